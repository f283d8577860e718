package commands_test

import (
	"errors"
	"strings"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "Jane Cooper", "jane@example.com", 149.90)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditLogRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", mock.AnythingOfType("*notification.Notification")).Return().Once()
	publisher.On("PublishOrderUpdate", mock.AnythingOfType("*order.Order")).Return().Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, id, created.ID())
	assert.Equal(t, order.AwaitingPayment, created.Status())
	assert.True(t, strings.HasPrefix(created.OrderNumber(), "ORD-"))
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	publisher := new(MockPublisher)
	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, created)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "Jane Cooper", "jane@example.com", 149.90)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, created)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderUpdate", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCreateOrderCommand(id, "Jane Cooper", "jane@example.com", 149.90)

	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditLogRepository)
	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditLogRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", mock.Anything, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	created, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Nil(t, created)
	uow.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}
