package questionnaire_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/KATBlackCoder/rapportflow/internal/domain"
	"github.com/KATBlackCoder/rapportflow/internal/questionnaire"
	questionnaireerrors "github.com/KATBlackCoder/rapportflow/internal/questionnaire/errors"
	questionnaireMock "github.com/KATBlackCoder/rapportflow/internal/questionnaire/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   questionnaire.Service
	repo      *questionnaireMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := questionnaireMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   questionnaire.NewService(db, repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(v string) *string { return &v }

func baseRequest() questionnaire.QuestionnaireRequest {
	return questionnaire.QuestionnaireRequest{
		Title:      "Visite terrain",
		Status:     string(domain.QuestionnairePublished),
		TargetType: string(domain.TargetEmployees),
	}
}

func TestQuestionnaireService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("two-phase build links earlier questions only", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := baseRequest()
		req.Questions = []questionnaire.QuestionInput{
			{Type: "radio", Question: "Client présent ?", Options: questionnaire.OptionSet{{Key: "oui", Label: "Oui"}, {Key: "non", Label: "Non"}}},
			{Type: "text", Question: "Nom du client", ConditionalQuestionIndex: intPtr(0), ConditionalValue: strPtr("oui"), Order: intPtr(1)},
			{Type: "number", Question: "Montant", ConditionalQuestionIndex: intPtr(2)},
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, q *questionnaire.Questionnaire) error {
			assert.Equal(t, uint(4), *q.CreatedBy)
			assert.Equal(t, domain.QuestionnairePublished, q.Status)
			q.ID = 3
			return nil
		})

		nextID := uint(20)
		deps.repo.EXPECT().CreateQuestion(ctx, gomock.Any()).Times(3).DoAndReturn(func(_ context.Context, q *questionnaire.Question) error {
			assert.Equal(t, uint(3), q.QuestionnaireID)
			assert.Nil(t, q.ConditionalQuestionID)
			nextID++
			q.ID = nextID
			return nil
		})
		deps.repo.EXPECT().LinkConditional(ctx, uint(22), uint(21)).Return(nil)
		deps.redismock.ExpectDel(questionnaire.PublishedOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&questionnaire.Questionnaire{
			ID:        3,
			Title:     "Visite terrain",
			Status:    domain.QuestionnairePublished,
			Questions: []questionnaire.Question{{ID: 21}, {ID: 22, ConditionalQuestion: &questionnaire.QuestionRef{ID: 21, Question: "Client présent ?"}}, {ID: 23}},
		}, nil)

		resp, err := deps.service.Create(ctx, 4, req)

		assert.NoError(t, err)
		assert.Equal(t, 3, resp.QuestionsCount)
		assert.Equal(t, "Client présent ?", resp.Questions[1].ConditionalQuestion.Question)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := baseRequest()
		req.Questions = []questionnaire.QuestionInput{{Type: "text", Question: "Q"}}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateQuestion(ctx, gomock.Any()).Return(sql.ErrConnDone)

		_, err := deps.service.Create(ctx, 4, req)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown question type", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := baseRequest()
		req.Questions = []questionnaire.QuestionInput{{Type: "slider", Question: "Q"}}

		_, err := deps.service.Create(ctx, 4, req)

		assert.ErrorIs(t, err, questionnaireerrors.ErrInvalidQuestionType)
	})
}

func TestQuestionnaireService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("absent questions are kept", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateFields(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(questionnaire.PublishedOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&questionnaire.Questionnaire{ID: 3}, nil)

		_, err := deps.service.Update(ctx, 3, baseRequest())

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("present questions replace all", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := baseRequest()
		req.Questions = []questionnaire.QuestionInput{{Type: "date", Question: "Date de visite"}}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		gomock.InOrder(
			deps.repo.EXPECT().UpdateFields(ctx, gomock.Any()).Return(nil),
			deps.repo.EXPECT().DeleteQuestions(ctx, uint(3)).Return(nil),
			deps.repo.EXPECT().CreateQuestion(ctx, gomock.Any()).Return(nil),
		)
		deps.redismock.ExpectDel(questionnaire.PublishedOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&questionnaire.Questionnaire{ID: 3}, nil)

		_, err := deps.service.Update(ctx, 3, req)

		assert.NoError(t, err)
	})

	t.Run("empty questions list clears them", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		req := baseRequest()
		req.Questions = []questionnaire.QuestionInput{}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateFields(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().DeleteQuestions(ctx, uint(3)).Return(nil)
		deps.redismock.ExpectDel(questionnaire.PublishedOptionsKey).SetVal(1)
		deps.repo.EXPECT().FindByID(ctx, uint(3)).Return(&questionnaire.Questionnaire{ID: 3}, nil)

		_, err := deps.service.Update(ctx, 3, req)

		assert.NoError(t, err)
	})

	t.Run("missing questionnaire", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().UpdateFields(ctx, gomock.Any()).Return(gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 3, baseRequest())

		assert.ErrorIs(t, err, questionnaireerrors.ErrQuestionnaireNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestQuestionnaireService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, uint(3)).Return(nil)
		deps.redismock.ExpectDel(questionnaire.PublishedOptionsKey).SetVal(1)

		assert.NoError(t, deps.service.Delete(ctx, 3))
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, uint(3)).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, deps.service.Delete(ctx, 3), questionnaireerrors.ErrQuestionnaireNotFound)
	})
}

func TestQuestionnaireService_PublishedOptions(t *testing.T) {
	ctx := context.Background()
	opts := []questionnaire.PublishedOption{{ID: 3, Title: "Visite terrain"}}
	raw, _ := json.Marshal(opts)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redismock.ExpectGet(questionnaire.PublishedOptionsKey).SetVal(string(raw))

		got, err := deps.service.PublishedOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
	})

	t.Run("cache miss fills redis", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		deps.redismock.ExpectGet(questionnaire.PublishedOptionsKey).RedisNil()
		deps.repo.EXPECT().PublishedOptions(ctx).Return(opts, nil)
		deps.redismock.ExpectSet(questionnaire.PublishedOptionsKey, raw, 10*time.Minute).SetVal("OK")

		got, err := deps.service.PublishedOptions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, opts, got)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestQuestionnaireService_List(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()
	ctx := context.Background()
	filter := questionnaire.ListFilter{Search: strPtr("visite")}

	deps.repo.EXPECT().List(ctx, filter, 1, 15).Return([]questionnaire.Questionnaire{
		{ID: 2, Title: "Visite", Creator: &questionnaire.Creator{ID: 1, Name: "Adama Keita"}, Questions: []questionnaire.Question{{ID: 1}}},
	}, int64(1), nil)

	items, total, err := deps.service.List(ctx, filter, 1, 15)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Adama Keita", *items[0].CreatorName)
	assert.Equal(t, 1, items[0].QuestionsCount)
}
