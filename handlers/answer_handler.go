package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/forms"
	"questionnaire/middleware"
	"questionnaire/responses"
	"questionnaire/services"
)

type AnswerHandler struct {
	answerService *services.AnswerService
	log           *logrus.Logger
}

func NewAnswerHandler(answerService *services.AnswerService, log *logrus.Logger) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		log:           log,
	}
}

func (h *AnswerHandler) Submit(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var form forms.AnswerForm
	_ = c.ShouldBind(&form)

	errs, err := h.answerService.Submit(c.Request.Context(), user, &form)
	if err != nil {
		h.log.WithError(err).Error("answer submission failed")
		responses.ServerError(c)
		return
	}
	if !errs.IsValid() {
		responses.ValidationError(c, errs)
		return
	}

	responses.OK(c, nil, responses.MsgAnswerSaved)
}
