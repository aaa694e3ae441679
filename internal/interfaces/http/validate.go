package http

import "github.com/go-playground/validator/v10"

// validate instancia compartida por los handlers; los DTOs llevan tags `validate`.
var validate = validator.New()
