package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarningsSorted(t *testing.T) {
	w := NewWarnings()
	w.Add("missingImage", "Gorgon")
	w.Add("missingImage", "Braton")
	w.Add("missingImage", "Gorgon")
	w.Add("polarity", "Excalibur: AP_FUSION")

	assert.Equal(t, 4, w.Count())
	assert.Equal(t, map[string][]string{
		"missingImage": {"Braton", "Gorgon"},
		"polarity":     {"Excalibur: AP_FUSION"},
	}, w.Sorted())
}

func TestWarningsMerge(t *testing.T) {
	w := NewWarnings()
	w.Add("missingImage", "Braton")

	other := NewWarnings()
	other.Add("missingImage", "Gorgon")
	other.Add("failedImage", "Lato")

	w.Merge(other)
	w.Merge(nil)

	assert.Equal(t, 3, w.Count())
	assert.Equal(t, []string{"Braton", "Gorgon"}, w.Sorted()["missingImage"])
}
