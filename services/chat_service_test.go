package services

import (
	"fmt"
	"testing"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatFixture(t *testing.T) *ChatService {
	return NewChatService(repository.NewMessageRepository(openTestDB(t)))
}

func TestSendMessageValidation(t *testing.T) {
	svc := newChatFixture(t)

	_, err := svc.SendMessage(0, "Ana", "hola", "general")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.SendMessage(1, "", "hola", "general")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	_, err = svc.SendMessage(1, "Ana", "", "general")
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	// room defaults to general
	msg, err := svc.SendMessage(1, "Ana", "hola", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoom, msg.Room)
	assert.NotZero(t, msg.ID)
}

func TestHistoryOrderAndLimit(t *testing.T) {
	svc := newChatFixture(t)

	for i := 1; i <= DefaultHistoryLimit+10; i++ {
		_, err := svc.SendMessage(1, "Ana", fmt.Sprintf("msg %d", i), "general")
		require.NoError(t, err)
	}

	msgs, err := svc.History("general", 0)
	require.NoError(t, err)
	require.Len(t, msgs, DefaultHistoryLimit)

	// oldest of the window first, the newest message last
	assert.Equal(t, "msg 11", msgs[0].Body)
	assert.Equal(t, fmt.Sprintf("msg %d", DefaultHistoryLimit+10), msgs[len(msgs)-1].Body)
	for i := 1; i < len(msgs); i++ {
		assert.Less(t, msgs[i-1].ID, msgs[i].ID)
	}
}

func TestHistoryRoomIsolation(t *testing.T) {
	svc := newChatFixture(t)

	_, err := svc.SendMessage(1, "Ana", "solo general", "general")
	require.NoError(t, err)
	_, err = svc.SendMessage(2, "Luis", "solo soporte", "support")
	require.NoError(t, err)

	general, err := svc.History("general", 50)
	require.NoError(t, err)
	require.Len(t, general, 1)
	assert.Equal(t, "solo general", general[0].Body)

	support, err := svc.History("support", 50)
	require.NoError(t, err)
	require.Len(t, support, 1)
	assert.Equal(t, "solo soporte", support[0].Body)
}

func TestHistoryCapsLimit(t *testing.T) {
	svc := newChatFixture(t)

	for i := 0; i < DefaultHistoryLimit+5; i++ {
		_, err := svc.SendMessage(1, "Ana", "hola", "general")
		require.NoError(t, err)
	}

	msgs, err := svc.History("general", 2)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	// DefaultHistoryLimit is the maximum window, not just the default
	msgs, err = svc.History("general", 500)
	require.NoError(t, err)
	assert.Len(t, msgs, DefaultHistoryLimit)
}
