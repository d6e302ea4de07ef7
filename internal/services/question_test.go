package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/atahmasb/trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionList(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedQuestions(t, db, 23, 1, 2)
	svc := NewQuestionService(db)

	t.Run("first page", func(t *testing.T) {
		page, err := svc.List(1)
		require.NoError(t, err)
		assert.Len(t, page.Questions, 10)
		assert.EqualValues(t, 23, page.Total)
		assert.Equal(t, seeded[0].ID, page.Questions[0].ID)
	})

	t.Run("last partial page", func(t *testing.T) {
		page, err := svc.List(3)
		require.NoError(t, err)
		assert.Len(t, page.Questions, 3)
		assert.Equal(t, seeded[20].ID, page.Questions[0].ID)
		assert.EqualValues(t, 23, page.Total)
	})

	t.Run("page past the end", func(t *testing.T) {
		_, err := svc.List(4)
		assert.Equal(t, KindNotFound, KindOf(err))
		assert.ErrorIs(t, err, ErrEmptyPage)
	})

	t.Run("page zero", func(t *testing.T) {
		_, err := svc.List(0)
		assert.Equal(t, KindNotFound, KindOf(err))
	})

	for _, p := range []int{math.MaxInt / QuestionsPerPage, math.MaxInt/QuestionsPerPage + 1, math.MaxInt} {
		t.Run(fmt.Sprintf("huge page %d", p), func(t *testing.T) {
			_, err := svc.List(p)
			assert.Equal(t, KindNotFound, KindOf(err))
			assert.ErrorIs(t, err, ErrEmptyPage)
		})
	}
}

func TestQuestionListEmptyStore(t *testing.T) {
	svc := NewQuestionService(setupTestDB(t))
	_, err := svc.List(1)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestQuestionCreateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)

	created, err := svc.Create(QuestionInput{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 3})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Da Vinci", got.Answer)
	assert.EqualValues(t, 2, got.Category)
	assert.Equal(t, 3, got.Difficulty)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.Delete(created.ID)
	assert.Equal(t, KindNotFound, KindOf(err), "second delete is not found, not internal")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionDeleteOnlyTarget(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedQuestions(t, db, 3, 1)
	svc := NewQuestionService(db)

	_, err := svc.Delete(seeded[1].ID)
	require.NoError(t, err)

	total, err := svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	_, err = svc.GetByID(seeded[0].ID)
	assert.NoError(t, err)
	_, err = svc.GetByID(seeded[2].ID)
	assert.NoError(t, err)
}

func TestQuestionCreateRejectsBlank(t *testing.T) {
	svc := NewQuestionService(setupTestDB(t))
	_, err := svc.Create(QuestionInput{Question: "  ", Answer: "x", Category: 1, Difficulty: 1})
	assert.Equal(t, KindBadRequest, KindOf(err))
}

func TestQuestionSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	for _, text := range []string{
		"What is the largest lake in Africa?",
		"Which is the only team to play in every soccer World Cup tournament?",
		"What boxer's original name is Cassius Clay?",
		"Is 100% of the title a LAKE?",
		"Who painted Él Greco works?",
	} {
		require.NoError(t, db.Create(&models.Question{Question: text, Answer: "a", Category: 1, Difficulty: 1}).Error)
	}

	t.Run("case insensitive", func(t *testing.T) {
		found, err := svc.Search("lAkE")
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "What is the largest lake in Africa?", found[0].Question)
		assert.Less(t, found[0].ID, found[1].ID)
	})

	t.Run("non-ASCII term", func(t *testing.T) {
		found, err := svc.Search("Él")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Who painted Él Greco works?", found[0].Question)

		found, err = svc.Search("Él GRECO")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		found, err := svc.Search("100%")
		require.NoError(t, err)
		assert.Len(t, found, 1)

		found, err = svc.Search("_")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("no match", func(t *testing.T) {
		found, err := svc.Search("zebra")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("empty term", func(t *testing.T) {
		_, err := svc.Search("")
		assert.Equal(t, KindNotFound, KindOf(err))
	})
}

func TestQuestionByCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategories(t, db, "Science", "Art")
	seedQuestions(t, db, 5, 1, 2)
	svc := NewQuestionService(db)

	science, err := svc.ByCategory(1)
	require.NoError(t, err)
	assert.Len(t, science, 3)
	assert.Equal(t, []uint{1, 1, 1}, CategoryIDs(science))

	none, err := svc.ByCategory(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionStoreFailureIsInternal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewQuestionService(db)
	require.NoError(t, db.Migrator().DropTable(&models.Question{}))

	_, err := svc.List(1)
	assert.Equal(t, KindInternal, KindOf(err))
	_, err = svc.Create(QuestionInput{Question: "q", Answer: "a", Category: 1, Difficulty: 1})
	assert.Equal(t, KindInternal, KindOf(err))
	_, err = svc.GetByID(1)
	assert.Equal(t, KindInternal, KindOf(err))
}
