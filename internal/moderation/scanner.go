package moderation

import (
	"strings"

	"github.com/ignatzorin/moderation-backend/internal/models"
)

// ScanResult — итог проверки текста по списку триггерных фраз.
type ScanResult struct {
	Flagged bool     `json:"flagged"`
	Matches []string `json:"matches"`
}

// Scan проверяет текст на вхождение триггерных фраз без учёта регистра.
// Совпадение — обычное вхождение подстроки, без границ слов: "cats"
// сработает на фразу "cat". Это осознанное упрощение, ложные
// срабатывания разбирает ревьюер. Пустой текст никогда не флагается.
// Функция чистая: без I/O и без ошибок.
func Scan(text string, words []models.TriggerWord) ScanResult {
	result := ScanResult{}
	if text == "" {
		return result
	}

	lowered := strings.ToLower(text)
	for _, w := range words {
		phrase := strings.ToLower(w.Word)
		if phrase == "" {
			continue
		}
		if strings.Contains(lowered, phrase) {
			result.Flagged = true
			result.Matches = append(result.Matches, w.Word)
		}
	}

	return result
}
