package usecase

import "time"

// SetNow pins the reference clock in tests.
func (uc *implUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
