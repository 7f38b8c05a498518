package validators

import (
	"regexp"
	"strings"

	"github.com/denmor86/ya-redemption/internal/models"
)

var (
	vpaPattern     = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z][a-zA-Z0-9]{1,63}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	phonePattern   = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// ParseDestination разбирает реквизиты получателя в соответствии со способом выплаты.
// Возвращает false, если реквизиты не подходят к способу выплаты.
func ParseDestination(method models.Method, destination string) (models.Payee, bool) {
	// Удаляем все пробелы
	destination = strings.ReplaceAll(strings.TrimSpace(destination), " ", "")

	switch method {
	case models.MethodUPI:
		if !vpaPattern.MatchString(destination) {
			return models.Payee{}, false
		}
		return models.Payee{VPA: strings.ToLower(destination)}, true
	case models.MethodBankTransfer:
		// формат: <номер счёта>/<IFSC>
		account, ifsc, ok := strings.Cut(destination, "/")
		if !ok {
			return models.Payee{}, false
		}
		ifsc = strings.ToUpper(ifsc)
		if !accountPattern.MatchString(account) || !ifscPattern.MatchString(ifsc) {
			return models.Payee{}, false
		}
		return models.Payee{AccountNumber: account, IFSC: ifsc}, true
	case models.MethodWallet:
		phone := strings.ReplaceAll(destination, "-", "")
		if !phonePattern.MatchString(phone) {
			return models.Payee{}, false
		}
		return models.Payee{Phone: phone}, true
	}
	return models.Payee{}, false
}
