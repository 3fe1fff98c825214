// internal/services/faq_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivekdake09/dreamhome-pune-nagpur/internal/models"
)

func seedFAQs(t *testing.T, svc *FAQService, propertyID uuid.UUID, questions ...string) []models.PropertyFAQ {
	t.Helper()

	out := make([]models.PropertyFAQ, 0, len(questions))
	for _, q := range questions {
		faq, err := svc.Create(&CreateFAQRequest{
			PropertyID: propertyID.String(),
			Question:   q,
			Answer:     "Answer for " + q,
		})
		require.NoError(t, err)
		out = append(out, *faq)
	}
	return out
}

func questionsInOrder(faqs []models.PropertyFAQ) []string {
	out := make([]string, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, f.Question)
	}
	return out
}

func TestFAQCreateAppendsAfterHighestOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")

	faqs := seedFAQs(t, svc, property.ID, "What is the carpet area?", "Is RERA registered?")

	assert.Equal(t, 1, faqs[0].DisplayOrder)
	assert.Equal(t, 2, faqs[1].DisplayOrder)
}

func TestFAQCreateUnknownProperty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)

	_, err := svc.Create(&CreateFAQRequest{
		PropertyID: uuid.NewString(),
		Question:   "Q",
		Answer:     "A",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQListSortedByDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seedFAQs(t, svc, property.ID, "A", "B", "C")

	faqs, err := svc.ListByProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, questionsInOrder(faqs))
}

func TestFAQMoveUpSwapsWithPredecessor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seeded := seedFAQs(t, svc, property.ID, "A", "B", "C")

	faqs, err := svc.MoveUp(property.ID, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, questionsInOrder(faqs))

	// The swap is persisted, not just reflected in the return value
	faqs, err = svc.ListByProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, questionsInOrder(faqs))
}

func TestFAQMoveDownSwapsWithSuccessor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seeded := seedFAQs(t, svc, property.ID, "A", "B", "C")

	faqs, err := svc.MoveDown(property.ID, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "B"}, questionsInOrder(faqs))
}

func TestFAQMoveBoundaryIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seeded := seedFAQs(t, svc, property.ID, "A", "B", "C")

	faqs, err := svc.MoveUp(property.ID, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, questionsInOrder(faqs))

	faqs, err = svc.MoveDown(property.ID, seeded[2].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, questionsInOrder(faqs))
}

func TestFAQMoveUnknownID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seedFAQs(t, svc, property.ID, "A")

	_, err := svc.MoveUp(property.ID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQReorderUnknownIDRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seeded := seedFAQs(t, svc, property.ID, "A", "B")

	err := svc.Reorder([]FAQOrderUpdate{
		{ID: seeded[0].ID, Order: 99},
		{ID: uuid.New(), Order: 1},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The first half of the batch must not have been committed
	faqs, err := svc.ListByProperty(property.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, faqs[0].DisplayOrder)
	assert.Equal(t, 2, faqs[1].DisplayOrder)
}

func TestFAQUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFAQService(db)
	property := createTestProperty(t, db, "Skyline Residency")
	seeded := seedFAQs(t, svc, property.ID, "Old question")

	updated, err := svc.Update(seeded[0].ID, &UpdateFAQRequest{Question: "New question"})
	require.NoError(t, err)
	assert.Equal(t, "New question", updated.Question)
	assert.Equal(t, "Answer for Old question", updated.Answer)

	require.NoError(t, svc.Delete(seeded[0].ID))
	assert.ErrorIs(t, svc.Delete(seeded[0].ID), ErrNotFound)
}
