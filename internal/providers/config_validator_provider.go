package providers

import (
	"errors"

	"github.com/gookit/validate"

	"catchlog/internal/structures"
)

// CnfValidator checks a parsed config against the validate tags declared
// on the structures package.
type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if v.Validate() {
		return nil
	}
	return errors.New(v.Errors.One())
}
