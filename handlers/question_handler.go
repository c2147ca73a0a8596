package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/forms"
	"questionnaire/middleware"
	"questionnaire/responses"
	"questionnaire/services"
)

type QuestionHandler struct {
	questionService *services.QuestionService
	log             *logrus.Logger
}

func NewQuestionHandler(questionService *services.QuestionService, log *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		log:             log,
	}
}

func (h *QuestionHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var form forms.QuestionFilterForm
	_ = c.ShouldBindQuery(&form)

	if errs := form.Validate(); !errs.IsValid() {
		responses.ValidationError(c, errs)
		return
	}

	criteria := services.FilterCriteria{
		Active:    form.Active,
		HasAnswer: form.HasAnswer,
		Title:     form.Title,
	}
	data, err := h.questionService.List(c.Request.Context(), user, criteria)
	if err != nil {
		h.log.WithError(err).Error("question listing failed")
		responses.ServerError(c)
		return
	}

	responses.OK(c, data, "")
}

func (h *QuestionHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !user.HasPermission("add_question") {
		responses.Error(c, responses.MsgPermissionDenied)
		return
	}

	var form forms.QuestionForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); !errs.IsValid() {
		responses.ValidationError(c, errs)
		return
	}

	question, err := h.questionService.Create(c.Request.Context(), &form)
	if err != nil {
		h.log.WithError(err).Error("question creation failed")
		responses.ServerError(c)
		return
	}

	responses.OK(c, gin.H{"id": question.ID}, responses.MsgQuestionCreated)
}
