package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

func triggerWords(words ...string) []models.TriggerWord {
	list := make([]models.TriggerWord, 0, len(words))
	for _, w := range words {
		list = append(list, models.TriggerWord{Word: w, Category: "self-harm"})
	}
	return list
}

func TestScan_FlagsMatchingPhrase(t *testing.T) {
	result := Scan("feeling kms today", triggerWords("kms"))

	assert.True(t, result.Flagged)
	assert.Equal(t, []string{"kms"}, result.Matches)
}

func TestScan_SafeContent(t *testing.T) {
	result := Scan("I'm fine", triggerWords("kms"))

	assert.False(t, result.Flagged)
	assert.Empty(t, result.Matches)
}

func TestScan_CaseInsensitive(t *testing.T) {
	result := Scan("Feeling KMS Today", triggerWords("kms"))
	assert.True(t, result.Flagged)

	result = Scan("feeling kms today", triggerWords("KMS"))
	assert.True(t, result.Flagged)
	assert.Equal(t, []string{"KMS"}, result.Matches, "совпадение хранит фразу из реестра как есть")
}

func TestScan_SubstringWithoutWordBoundaries(t *testing.T) {
	// Совпадение по подстроке: "cats" срабатывает на фразу "cat".
	result := Scan("I love cats", triggerWords("cat"))

	assert.True(t, result.Flagged)
	assert.Equal(t, []string{"cat"}, result.Matches)
}

func TestScan_MultiplePhrases(t *testing.T) {
	result := Scan("kms, just want to end it all", triggerWords("kms", "end it all", "suicide"))

	assert.True(t, result.Flagged)
	assert.Equal(t, []string{"kms", "end it all"}, result.Matches)
}

func TestScan_EmptyTextNeverFlags(t *testing.T) {
	result := Scan("", triggerWords("kms"))

	assert.False(t, result.Flagged)
	assert.Empty(t, result.Matches)
}

func TestScan_EmptyRegistry(t *testing.T) {
	result := Scan("any content", nil)

	assert.False(t, result.Flagged)
	assert.Empty(t, result.Matches)
}

func TestScan_SkipsEmptyPhrase(t *testing.T) {
	// Пустая фраза в реестре не должна флагать весь контент подряд.
	result := Scan("any content", triggerWords(""))

	assert.False(t, result.Flagged)
}

func TestScan_MultiWordPhrase(t *testing.T) {
	result := Scan("я думаю про self harm постоянно", triggerWords("self harm"))

	assert.True(t, result.Flagged)
	assert.Equal(t, []string{"self harm"}, result.Matches)
}
