package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-writenest/internal/adapter"
	"github.com/MKhiriev/go-writenest/internal/mock"
	"github.com/MKhiriev/go-writenest/internal/service"
	"github.com/MKhiriev/go-writenest/internal/validators"
	"github.com/MKhiriev/go-writenest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCommentSvc(t *testing.T) (service.CommentService, *mock.MockServerAdapter) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	return service.NewCommentService(serverAdapter, validators.NewFormValidator()), serverAdapter
}

func TestCommentService_Submit_InvalidBodiesSendNothing(t *testing.T) {
	// the adapter mock has no expectations: any request fails the test
	svc, _ := newTestCommentSvc(t)
	ctx := context.Background()

	err := svc.Submit(ctx, 1, "   \n ")
	assert.ErrorIs(t, err, service.ErrInvalidComment)
	assert.Equal(t, "Please enter a comment", service.Message(err))

	err = svc.Submit(ctx, 1, strings.Repeat("x", 1001))
	assert.ErrorIs(t, err, validators.ErrCommentTooLong)
	assert.Equal(t, "Comment is too long (max 1000 characters)", service.Message(err))
}

func TestCommentService_Submit_TrimsAndPosts(t *testing.T) {
	svc, serverAdapter := newTestCommentSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().Token().Return("tok")
	serverAdapter.EXPECT().CreateComment(ctx, int64(3), models.CommentRequest{Content: "Great read"}).Return(nil)

	require.NoError(t, svc.Submit(ctx, 3, "  Great read \n"))
}

func TestCommentService_Submit_RequiresToken(t *testing.T) {
	svc, serverAdapter := newTestCommentSvc(t)

	serverAdapter.EXPECT().Token().Return("")

	assert.ErrorIs(t, svc.Submit(context.Background(), 3, "hi"), service.ErrNotAuthenticated)
}

func TestCommentService_Submit_ServerMessage(t *testing.T) {
	svc, serverAdapter := newTestCommentSvc(t)

	serverAdapter.EXPECT().Token().Return("tok")
	serverAdapter.EXPECT().CreateComment(gomock.Any(), int64(3), gomock.Any()).
		Return(adapter.NewStatusError(400, "Comments are closed"))

	err := svc.Submit(context.Background(), 3, "hi")
	require.Error(t, err)
	assert.Equal(t, "Comments are closed", service.Message(err))
}

func TestCommentService_List(t *testing.T) {
	svc, serverAdapter := newTestCommentSvc(t)

	want := []models.Comment{{UserName: "Ann", Body: "First"}}
	serverAdapter.EXPECT().ListComments(gomock.Any(), int64(8)).Return(want, nil)

	got, err := svc.List(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
