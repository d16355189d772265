// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"

	"github.com/neurox/neurox2-client/internal/service"
)

func humanizeServiceError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return "Отсутствует сеть или сервер недоступен"
	case errors.Is(err, service.ErrMalformedServerResponse):
		return "Сервер вернул некорректный ответ"
	case errors.Is(err, service.ErrServerSideFailure):
		return "Ошибка на стороне сервера, попробуйте позже"
	}

	return err.Error()
}
