package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"questionnaire/forms"
	"questionnaire/models"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

// QuestionJSON is the serialized listing record.
type QuestionJSON struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	CanEdit    bool   `json:"can_edit"`
	EndTime    string `json:"end_time"`
	UserAnswer *int   `json:"user_answer"`
	RealAnswer *int   `json:"real_answer"`
}

// List returns the questions matching the criteria, each carrying the
// requesting user's answer when one exists. Answers are fetched in a single
// batched query, not per question.
func (s *QuestionService) List(ctx context.Context, user *models.User, criteria FilterCriteria) ([]QuestionJSON, error) {
	now := time.Now()
	params := DeriveParams(criteria, user.ID, now)

	query := s.db.WithContext(ctx).Model(&models.Question{})
	query = applyParams(query, params.Include, false)
	query = applyParams(query, params.Exclude, true)

	var questions []models.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}

	answers, err := s.userAnswers(ctx, user.ID, questions)
	if err != nil {
		return nil, err
	}

	return serializeQuestions(questions, answers, now), nil
}

// Create persists a new question. Callers are responsible for the permission
// check; input is assumed validated.
func (s *QuestionService) Create(ctx context.Context, form *forms.QuestionForm) (*models.Question, error) {
	question := models.Question{
		Title:      form.Title,
		RealAnswer: form.RealAnswerValue,
		EndTime:    form.EndTimeValue,
	}
	if err := s.db.WithContext(ctx).Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func applyParams(query *gorm.DB, params QueryParams, exclude bool) *gorm.DB {
	if params.EndTimeFrom != nil {
		query = query.Where("end_time >= ?", *params.EndTimeFrom)
	}
	if params.EndTimeBefore != nil {
		query = query.Where("end_time < ?", *params.EndTimeBefore)
	}
	if params.AnsweredBy != nil {
		condition := "EXISTS (SELECT 1 FROM answers WHERE answers.question_id = questions.id AND answers.user_id = ? AND answers.deleted_at IS NULL)"
		if exclude {
			condition = "NOT " + condition
		}
		query = query.Where(condition, *params.AnsweredBy)
	}
	if params.TitleContains != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(params.TitleContains)+"%")
	}
	return query
}

// userAnswers loads the user's answers for the given questions, keyed by
// question ID.
func (s *QuestionService) userAnswers(ctx context.Context, userID uint, questions []models.Question) (map[uint]models.Answer, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	ids := make([]uint, len(questions))
	for i, question := range questions {
		ids[i] = question.ID
	}

	var answers []models.Answer
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND question_id IN ?", userID, ids).
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	byQuestion := make(map[uint]models.Answer, len(answers))
	for _, answer := range answers {
		byQuestion[answer.QuestionID] = answer
	}
	return byQuestion, nil
}

func serializeQuestions(questions []models.Question, answers map[uint]models.Answer, now time.Time) []QuestionJSON {
	data := make([]QuestionJSON, 0, len(questions))
	for _, question := range questions {
		record := QuestionJSON{
			ID:         question.ID,
			Title:      question.Title,
			CanEdit:    question.CanAnswer(now),
			EndTime:    question.EndTime.Format(forms.EndTimeLayout),
			RealAnswer: question.RealAnswer,
		}
		if answer, ok := answers[question.ID]; ok {
			answer.Question = question
			record.CanEdit = answer.CanEdit(now)
			value := answer.Value
			record.UserAnswer = &value
		}
		data = append(data, record)
	}
	return data
}
