package services

import (
	"strings"

	"github.com/google/uuid"
)

const (
	disputeNumberPrefix = "DISP"
	receiptNumberPrefix = "RCPT"
)

// newDocumentNumber формирует номер документа вида PREFIX-XXXXXXXX:
// восемь шестнадцатеричных символов в верхнем регистре из случайного UUID.
// Вероятность коллизии ничтожна, но не нулевая, поэтому вызывающая сторона
// повторяет генерацию при нарушении уникальности номера в хранилище.
func newDocumentNumber(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return prefix + "-" + strings.ToUpper(suffix)
}
