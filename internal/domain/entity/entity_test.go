package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_Breakdowns(t *testing.T) {
	stats := &Stats{
		TotalOrders:    6,
		TotalEvidences: 9,
		ByStatus:       map[string]int{"pending": 2, "completed": 3, "failed": 1},
		ByTechnician:   map[string]int{"Luis": 3, "Ana": 3},
	}

	assert.Equal(t, []Count{{"completed", 3}, {"pending", 2}, {"failed", 1}}, stats.StatusBreakdown())
	assert.Equal(t, []Count{{"Ana", 3}, {"Luis", 3}}, stats.TechnicianBreakdown())
	assert.Equal(t, stats.TotalOrders, stats.StatusTotal())
	assert.Equal(t, 6, stats.TechnicianTotal())
	assert.Empty(t, (&Stats{}).StatusBreakdown())
}

func TestClosureSubmission_Failure(t *testing.T) {
	photo := &Upload{Filename: "house.jpg", Data: []byte{1}}
	s := &ClosureSubmission{
		OrderID: "42",
		Outcome: OutcomeFailed,
		Failure: &FailureForm{Token: "abc", Justification: "minor_present", Photo: photo},
	}

	assert.Equal(t, map[string]string{"jwt": "abc", "justification": "minor_present", "notes": ""}, s.Fields())
	assert.Equal(t, map[string]*Upload{"photo_address": photo}, s.Files())
}

func TestClosureSubmission_Success(t *testing.T) {
	signed := &Upload{Filename: "signed.pdf", Data: []byte{1}}
	id := &Upload{Filename: "id.pdf", Data: []byte{2}}
	s := &ClosureSubmission{
		Outcome: OutcomeSucceeded,
		Success: &SuccessForm{Token: "abc", TitularPresent: true, SignedDoc: signed, IDDoc: id, Notes: "ok"},
	}

	assert.Equal(t, map[string]string{"jwt": "abc", "titular_present": "true", "notes": "ok"}, s.Fields())
	assert.Equal(t, map[string]*Upload{"doc_signed": signed, "doc_id": id}, s.Files())
}

func TestUpload_Info(t *testing.T) {
	var none *Upload
	assert.True(t, none.IsEmpty())
	assert.Nil(t, none.Info())
	assert.Nil(t, (&Upload{Filename: "empty.jpg"}).Info())

	info := (&Upload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1, 2, 3}}).Info()
	require.NotNil(t, info)
	assert.Equal(t, 3, info.Size)
}

func TestJustifications(t *testing.T) {
	j := Justifications{"absence_of_resident", "minor_present"}

	assert.Equal(t, "absence_of_resident", j.Default())
	assert.True(t, j.Contains("minor_present"))
	assert.False(t, j.Contains("bad_weather"))
	assert.Empty(t, Justifications(nil).Default())
}

func TestNavigationTarget_Path(t *testing.T) {
	target := NavigationTarget{OrderID: "42", Token: "a.b+c"}

	assert.Equal(t, "/orders/42/open#jwt=a.b%2Bc", target.Path())
}

func TestSession(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)

	var anonymous *Session
	assert.False(t, anonymous.IsAuthenticated())

	s := &Session{AccessToken: "acc", Role: RoleAdmin, AccessExpiresAt: &past}
	assert.True(t, s.HasRole(RoleAdmin))
	assert.False(t, s.HasRole(RoleTechnician))
	assert.True(t, s.IsExpired(now))
	assert.False(t, (&Session{AccessToken: "acc"}).IsExpired(now))
}

func TestOrderStatus(t *testing.T) {
	assert.True(t, OrderStatusInUse.IsValid())
	assert.False(t, OrderStatus("archived").IsValid())
	assert.True(t, OrderStatusExpired.IsFinal())
	assert.False(t, OrderStatusPending.IsFinal())
}
