package echoapi

import (
	"net/http"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
)

const errQuizGeneration = "Failed to generate quiz!"

// quizFailure marks errors returned by the quiz generation endpoint.
type quizFailure struct {
	err error
}

func (f quizFailure) Error() string { return f.err.Error() }
func (f quizFailure) Unwrap() error { return f.err }

// classifiedStatus maps a core.Error kind to an HTTP status.
func classifiedStatus(kind core.ErrorKind, quizPath bool) int {
	switch kind {
	case core.KindInvalidInput, core.KindInvalidAmount:
		return http.StatusBadRequest
	case core.KindNotFound:
		return http.StatusNotFound
	case core.KindMalformedResponse, core.KindSchemaViolation:
		return http.StatusBadGateway
	case core.KindInfrastructureFailure:
		if quizPath {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// translatedDetail renders field validation errors as "field: message" pairs.
func translatedDetail(cErr *core.Error, translator ut.Translator) string {
	var vErrs validator.ValidationErrors
	if !errors.As(cErr, &vErrs) {
		return cErr.Detail
	}
	msgs := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		msgs = append(msgs, vErr.Field()+": "+vErr.Translate(translator))
	}
	return strings.Join(msgs, "; ")
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to handle our errors.
// signalShutdown is called in order to gracefully shutdown the Server whenever a core.shutdown error is caught.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		var qf quizFailure
		isQuiz := errors.As(err, &qf)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			cErr, ok := core.AsError(err)
			if !ok { // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg
				logger.Error(msg, errors.Wrap(err, msg), map[string]interface{}{
					"path":      ctx.Path(),
					"requestId": ctx.Response().Header().Get(echo.HeaderXRequestID),
				})

				// shutting down...
				if core.IsShutdown(err) {
					signalShutdown()
				}
				break
			}

			code = classifiedStatus(cErr.Kind, isQuiz)
			if isQuiz {
				message = echo.Map{"error": errQuizGeneration, "kind": string(cErr.Kind), "detail": translatedDetail(cErr, translator)}
			} else {
				message = cErr.Detail
			}
			if code >= http.StatusInternalServerError && !isQuiz { // quiz failures are logged by the service
				logger.Error(cErr.Detail, err, map[string]interface{}{"path": ctx.Path()})
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead { // Issue #608
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
