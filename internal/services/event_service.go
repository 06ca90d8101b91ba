package services

import (
	"context"

	"github.com/gatherly/gatherly/internal/models"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context, filter models.EventFilter) ([]*models.Event, error) {
	return es.eventRepo.ListEvents(ctx, filter)
}

func (es *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return es.eventRepo.FindEventByID(ctx, oid)
}

func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, err
	}
	// Catalogue defaults carried over from the seed data the mobile client
	// expects: unrated events start at 4.5.
	if event.Rating == 0 {
		event.Rating = 4.5
	}
	return es.eventRepo.CreateEvent(ctx, event)
}

func (es *EventService) UpdateEvent(ctx context.Context, id string, event *models.Event) (*models.Event, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := models.Validate.Struct(event); err != nil {
		return nil, err
	}
	return es.eventRepo.UpdateEvent(ctx, oid, event)
}

func (es *EventService) DeleteEvent(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return es.eventRepo.DeleteEvent(ctx, oid)
}
