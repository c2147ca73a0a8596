package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"questionnaire/validation"
)

// Fixed outcome messages. The envelope is the only error channel: every
// endpoint answers HTTP 200 and signals failure through "success".
const (
	MsgLoginSuccess     = "Successfully logged in"
	MsgAlreadyLoggedIn  = "Already logged in"
	MsgBadCredentials   = "Incorrect username or password"
	MsgNotLoggedIn      = "User is not logged in"
	MsgServerError      = "Server error"
	MsgAnswerSaved      = "Answer object was created/updated"
	MsgRegistered       = "Successfully registered"
	MsgLoggedOut        = "Successfully logged out"
	MsgQuestionCreated  = "Question object was created"
	MsgPermissionDenied = "Permission denied"
)

// Envelope is the uniform response body: {"data": ..., "message": ..., "success": ...}.
type Envelope struct {
	Data    any     `json:"data"`
	Message *string `json:"message"`
	Success bool    `json:"success"`
}

func newEnvelope(data any, message string, success bool) Envelope {
	if data == nil {
		data = []any{}
	}
	env := Envelope{Data: data, Success: success}
	if message != "" {
		env.Message = &message
	}
	return env
}

// OK writes a success envelope. Pass "" to leave the message null.
func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, newEnvelope(data, message, true))
}

// Error writes a failure envelope with an empty data array.
func Error(c *gin.Context, message string) {
	c.JSON(http.StatusOK, newEnvelope(nil, message, false))
}

// ValidationError writes a failure envelope whose message is the rendered
// field-error collection.
func ValidationError(c *gin.Context, errs validation.Errors) {
	Error(c, errs.Message())
}

// ServerError writes the opaque internal-failure envelope. No detail from the
// underlying failure ever reaches the client.
func ServerError(c *gin.Context) {
	Error(c, MsgServerError)
}
