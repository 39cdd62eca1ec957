package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/pkg/logger"
	"sentia-be/internal/repository/specification"
	"sentia-be/internal/repository/unitofwork"
	"sentia-be/pkg/events"
	pktNats "sentia-be/pkg/nats"
)

const eventSessionDeleted = "SESSION_DELETED"

type ISessionService interface {
	ListSessions(ctx context.Context) ([]*dto.SessionSummary, error)

	// DeleteSession removes a session and its feedbacks. Returns nil, nil
	// when the session does not exist.
	DeleteSession(ctx context.Context, id uuid.UUID) (*dto.DeleteSessionResponse, error)
}

type sessionService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	sysLogger        logger.ILogger
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
	}
}

func (s *sessionService) ListSessions(ctx context.Context) ([]*dto.SessionSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAllWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.SessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summaries = append(summaries, toSessionSummary(sess))
	}
	return summaries, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id uuid.UUID) (*dto.DeleteSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.FeedbackRepository().DeleteBySessionId(ctx, session.Id); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.SessionRepository().Delete(ctx, session.Id); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.sysLogger.Info("SessionService", "Session deleted", map[string]interface{}{
		"session_number": session.SessionNumber,
	})
	s.publishDeleted(ctx, session)

	return &dto.DeleteSessionResponse{
		SessionNumber: session.SessionNumber,
	}, nil
}

func (s *sessionService) publishDeleted(ctx context.Context, session *entity.AnalysisSession) {
	msgPayload := dto.SessionEventMessage{
		SessionId:     session.Id,
		SessionNumber: session.SessionNumber,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			s.sysLogger.Warn("SessionService", "Failed to publish session event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventSessionDeleted,
			Data: map[string]interface{}{
				"session_id":     session.Id,
				"session_number": session.SessionNumber,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.sysLogger.Warn("SessionService", "Failed to publish NATS event", map[string]interface{}{"error": err.Error()})
		}
	}
}
