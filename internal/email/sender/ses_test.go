package sender

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
)

type mockSESService struct {
	sendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *mockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.sendEmailFunc(ctx, params, optFns...)
}

func TestSESSender_Send_Success(t *testing.T) {
	var captured *ses.SendEmailInput
	mock := &mockSESService{
		sendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			captured = params
			return &ses.SendEmailOutput{MessageId: aws.String("ses-msg-1")}, nil
		},
	}

	s := NewSESSender(mock, createTestLogger(t))
	result, err := s.Send(context.Background(), createTestMessage())

	assert.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "ses-msg-1", result.ID)

	assert.Equal(t, []string{"jane@school.edu"}, captured.Destination.ToAddresses)
	assert.Equal(t, "Approved! Food Drive", *captured.Message.Subject.Data)
	assert.Equal(t, "Kellenberg S.A.L.T <salt@firebirdfit.app>", *captured.Source)
}

func TestSESSender_Send_Error(t *testing.T) {
	mock := &mockSESService{
		sendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("throttled")
		},
	}

	s := NewSESSender(mock, createTestLogger(t))
	result, err := s.Send(context.Background(), createTestMessage())

	assert.Error(t, err)
	assert.Nil(t, result)
}
