package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest проверяет идентификаторы; форму проверяет FormValidator
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CenterID) == "" {
		return fmt.Errorf("%w: centerId is required", ErrInvalidInput)
	}

	return nil
}
