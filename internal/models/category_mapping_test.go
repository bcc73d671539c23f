package models_test

import (
	"github.com/pennyflow/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestLearnMappingCounts() {
	require.Nil(suite.T(), models.LearnMapping(models.DB, "REWE Supermarkt", "Food"))
	require.Nil(suite.T(), models.LearnMapping(models.DB, "rewe supermarkt", "Food"))

	var mapping models.CategoryMapping
	require.Nil(suite.T(), models.DB.First(&mapping).Error)

	assert.Equal(suite.T(), "rewe supermarkt", mapping.Keyword)
	assert.Equal(suite.T(), uint(2), mapping.Count)
}

func (suite *TestSuiteStandard) TestLearnMappingRecategorize() {
	require.Nil(suite.T(), models.LearnMapping(models.DB, "amazon", "Shopping"))
	require.Nil(suite.T(), models.LearnMapping(models.DB, "amazon", "Entertainment"))

	var mapping models.CategoryMapping
	require.Nil(suite.T(), models.DB.First(&mapping).Error)

	// The latest categorization wins
	assert.Equal(suite.T(), "Entertainment", mapping.Category)
}

func (suite *TestSuiteStandard) TestLearnMappingEmptyDescription() {
	require.Nil(suite.T(), models.LearnMapping(models.DB, "   ", "Food"))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.CategoryMapping{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestSuggestCategory() {
	require.Nil(suite.T(), models.LearnMapping(models.DB, "rewe", "Food"))
	require.Nil(suite.T(), models.LearnMapping(models.DB, "shell", "Transport"))

	tests := []struct {
		name        string
		description string
		category    string
		confidence  string
	}{
		{"exact match", "rewe", "Food", models.ConfidenceHigh},
		{"exact match different case", "REWE", "Food", models.ConfidenceHigh},
		{"substring match", "Shell Tankstelle 0815", "Transport", models.ConfidenceMedium},
		{"no match", "completely unknown", "", ""},
		{"empty description", "", "", ""},
	}

	for _, tt := range tests {
		category, confidence, err := models.SuggestCategory(models.DB, tt.description)
		require.Nil(suite.T(), err, tt.name)
		assert.Equal(suite.T(), tt.category, category, tt.name)
		assert.Equal(suite.T(), tt.confidence, confidence, tt.name)
	}
}

func (suite *TestSuiteStandard) TestSuggestCategoryPrefersFrequent() {
	require.Nil(suite.T(), models.LearnMapping(models.DB, "market", "Food"))
	require.Nil(suite.T(), models.LearnMapping(models.DB, "super market", "Shopping"))
	require.Nil(suite.T(), models.LearnMapping(models.DB, "super market", "Shopping"))

	// Both keywords match, the more frequently confirmed one wins
	category, confidence, err := models.SuggestCategory(models.DB, "my super market purchase")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Shopping", category)
	assert.Equal(suite.T(), models.ConfidenceMedium, confidence)
}
