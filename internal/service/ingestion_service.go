package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sentia-be/internal/dto"
	"sentia-be/internal/entity"
	"sentia-be/internal/pkg/logger"
	"sentia-be/internal/repository/unitofwork"
	"sentia-be/pkg/classifier"
	"sentia-be/pkg/events"
	"sentia-be/pkg/ingest"
	pktNats "sentia-be/pkg/nats"
)

const eventSessionIngested = "SESSION_INGESTED"

type IIngestionService interface {
	IngestUpload(ctx context.Context, filename string, data []byte) (*dto.IngestResponse, error)
	IngestText(ctx context.Context, req *dto.IngestTextRequest) (*dto.IngestResponse, error)
}

type ingestionService struct {
	uowFactory       unitofwork.RepositoryFactory
	classifier       classifier.Classifier
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	sysLogger        logger.ILogger

	// Serializes session-number allocation so concurrent ingestions cannot
	// observe the same gap. The unique index on session_number backstops
	// other writers of the same database.
	allocMu sync.Mutex
}

func NewIngestionService(
	uowFactory unitofwork.RepositoryFactory,
	cls classifier.Classifier,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IIngestionService {
	return &ingestionService{
		uowFactory:       uowFactory,
		classifier:       cls,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
	}
}

func (s *ingestionService) IngestUpload(ctx context.Context, filename string, data []byte) (*dto.IngestResponse, error) {
	rows, err := ingest.DecodeUpload(data, filename)
	if err != nil {
		return nil, err
	}
	if err := ingest.ValidateTextField(rows); err != nil {
		return nil, err
	}
	return s.ingestRows(ctx, &filename, rows)
}

func (s *ingestionService) IngestText(ctx context.Context, req *dto.IngestTextRequest) (*dto.IngestResponse, error) {
	rows := ingest.RowsFromText(req.Text)
	var label *string
	if req.Label != "" {
		label = &req.Label
	}
	return s.ingestRows(ctx, label, rows)
}

func (s *ingestionService) ingestRows(ctx context.Context, sourceFilename *string, rows []ingest.Row) (*dto.IngestResponse, error) {
	records := make([]*ingest.Record, 0, len(rows))
	for _, row := range rows {
		if record := ingest.ParseRow(row); record != nil {
			records = append(records, record)
		}
	}
	if len(records) == 0 {
		return nil, ingest.ErrEmptyUpload
	}

	// Classification happens before the transaction opens so a slow LLM
	// never holds database locks.
	sentiments := make([]entity.Sentiment, len(records))
	for i, record := range records {
		sentiments[i] = s.classifier.Classify(ctx, record.Text)
	}

	session, err := s.persistBatch(ctx, sourceFilename, records, sentiments)
	if err != nil {
		return nil, err
	}

	s.sysLogger.Info("IngestionService", "Session ingested", map[string]interface{}{
		"session_number": session.SessionNumber,
		"record_count":   len(records),
	})
	s.publishSessionEvent(ctx, eventSessionIngested, session, len(records))

	return &dto.IngestResponse{
		SessionId:     session.Id,
		SessionNumber: session.SessionNumber,
		RecordCount:   len(records),
	}, nil
}

// persistBatch allocates the lowest free session number and writes the session
// plus its feedbacks in one transaction. A duplicate-key conflict on the
// session number (another writer won the race) is retried once with a fresh
// allocation.
func (s *ingestionService) persistBatch(ctx context.Context, sourceFilename *string, records []*ingest.Record, sentiments []entity.Sentiment) (*entity.AnalysisSession, error) {
	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		uow := s.uowFactory.NewUnitOfWork(ctx)

		numbers, err := uow.SessionRepository().ListNumbers(ctx)
		if err != nil {
			return nil, err
		}

		session := &entity.AnalysisSession{
			Id:             uuid.New(),
			SessionNumber:  nextSessionNumber(numbers),
			SourceFilename: sourceFilename,
			CreatedAt:      time.Now(),
		}

		feedbacks := make([]*entity.Feedback, len(records))
		for i, record := range records {
			feedbacks[i] = &entity.Feedback{
				Id:            uuid.New(),
				SessionId:     session.Id,
				SessionNumber: session.SessionNumber,
				Text:          record.Text,
				Sentiment:     sentiments[i],
				CustomerName:  record.CustomerName,
				FeedbackDate:  record.FeedbackDate,
				ProductArea:   record.ProductArea,
				CreatedAt:     time.Now(),
			}
		}

		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		if err := s.writeBatch(ctx, uow, session, feedbacks); err != nil {
			_ = uow.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, err
		}
		// The unique-index conflict can also surface at commit time, e.g. with
		// deferred constraints; treat it like an insert conflict.
		if err := uow.Commit(); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return session, nil
	}
	return nil, lastErr
}

func (s *ingestionService) writeBatch(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.AnalysisSession, feedbacks []*entity.Feedback) error {
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return err
	}
	return uow.FeedbackRepository().BulkCreate(ctx, feedbacks)
}

func (s *ingestionService) publishSessionEvent(ctx context.Context, eventType string, session *entity.AnalysisSession, recordCount int) {
	msgPayload := dto.SessionEventMessage{
		SessionId:     session.Id,
		SessionNumber: session.SessionNumber,
		RecordCount:   recordCount,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		if err := s.publisherService.Publish(ctx, msgJson); err != nil {
			s.sysLogger.Warn("IngestionService", "Failed to publish session event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: eventType,
			Data: map[string]interface{}{
				"session_id":     session.Id,
				"session_number": session.SessionNumber,
				"record_count":   recordCount,
			},
			OccurredAt: time.Now(),
		}
		// Auxiliary bus; a publish failure never fails the ingestion.
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.sysLogger.Warn("IngestionService", "Failed to publish NATS event", map[string]interface{}{"error": err.Error()})
		}
	}
}

// nextSessionNumber returns the lowest positive integer missing from the
// ascending list of allocated numbers. Deleted sessions leave gaps that get
// reused before the sequence grows.
func nextSessionNumber(numbers []int) int {
	expected := 1
	for _, n := range numbers {
		if n == expected {
			expected++
		} else if n > expected {
			break
		}
	}
	return expected
}
