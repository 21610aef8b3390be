package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/capturedesk/capturedesk/internal/reasoning"
)

func TestMergeStatements(t *testing.T) {
	t.Run("new statements are appended", func(t *testing.T) {
		item := &entity.ProcessedItem{}
		mergeStatements(item, []reasoning.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
			{Text: "near the waterfront", Evidence: "location"},
		})
		assert.Equal(t, []entity.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
			{Text: "near the waterfront", Evidence: "location"},
		}, item.Statements)
	})

	t.Run("visual displaces location for the same intent", func(t *testing.T) {
		item := &entity.ProcessedItem{Statements: []entity.Statement{
			{Text: "ordering espresso", Evidence: "location"},
		}}
		mergeStatements(item, []reasoning.Statement{
			{Text: "Ordering Espresso", Evidence: "visual"},
		})
		assert.Equal(t, []entity.Statement{
			{Text: "Ordering Espresso", Evidence: "visual"},
		}, item.Statements)
	})

	t.Run("location never displaces visual", func(t *testing.T) {
		item := &entity.ProcessedItem{Statements: []entity.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
		}}
		mergeStatements(item, []reasoning.Statement{
			{Text: "ordering espresso", Evidence: "location"},
		})
		assert.Equal(t, []entity.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
		}, item.Statements)
	})

	t.Run("duplicates and blanks are ignored", func(t *testing.T) {
		item := &entity.ProcessedItem{Statements: []entity.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
		}}
		mergeStatements(item, []reasoning.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
			{Text: "  ", Evidence: "visual"},
		})
		assert.Len(t, item.Statements, 1)
	})
}

func TestMergeAnalysis_CarriesStatements(t *testing.T) {
	item := &entity.ProcessedItem{Title: "Foo Cafe"}
	mergeAnalysis(item, reasoning.Analysis{
		Title:   "Foo Cafe",
		Summary: "an espresso stop",
		Statements: []reasoning.Statement{
			{Text: "ordering espresso", Evidence: "visual"},
		},
	})
	assert.Equal(t, []entity.Statement{
		{Text: "ordering espresso", Evidence: "visual"},
	}, item.Statements)
}
