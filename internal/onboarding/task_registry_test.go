package onboarding_test

import (
	"testing"

	"go-onboarding/internal/onboarding"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTaskCatalogue(t *testing.T) {
	t.Run("every stage has at least one task", func(t *testing.T) {
		total := 0
		for _, stage := range onboarding.Stages() {
			defs := onboarding.CatalogueForStage(stage)
			assert.NotEmpty(t, defs, "stage %s has no tasks", stage)
			total += len(defs)
		}
		assert.Equal(t, onboarding.CountDefaultCatalogueTasks(), total)
	})

	t.Run("orders are contiguous from one within each stage", func(t *testing.T) {
		for _, stage := range onboarding.Stages() {
			for i, def := range onboarding.CatalogueForStage(stage) {
				assert.Equal(t, i+1, def.Order, "stage %s", stage)
			}
		}
	})

	t.Run("an unknown stage yields an empty catalogue", func(t *testing.T) {
		assert.Empty(t, onboarding.CatalogueForStage(onboarding.Stage("probation")))
	})
}
