package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/clinicore/doctor-chatbot/internal/domain/entities"
)

func TestExtractionService_Extract(t *testing.T) {
	t.Run("selects the primary entity by label priority", func(t *testing.T) {
		recognizer := new(MockEntityRecognizer)
		recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{
			{Text: "2026-06-21", Label: entities.EntityLabelDate},
			{Text: "John Doe", Label: entities.EntityLabelPerson},
		}, nil)

		service := NewExtractionService(recognizer)
		utterance, entity := service.Extract(context.Background(), "history for John Doe around 2026-06-21")

		assert.Equal(t, "history for John Doe around 2026-06-21", utterance.Text)
		if assert.NotNil(t, entity) {
			assert.Equal(t, entities.EntityLabelPerson, entity.Label)
			assert.Equal(t, "John Doe", entity.Text)
		}
	})

	t.Run("within a label the earliest occurrence wins", func(t *testing.T) {
		recognizer := new(MockEntityRecognizer)
		recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{
			{Text: "P001", Label: entities.EntityLabelIdentifier},
			{Text: "P002", Label: entities.EntityLabelIdentifier},
		}, nil)

		service := NewExtractionService(recognizer)
		_, entity := service.Extract(context.Background(), "compare P001 and P002")

		if assert.NotNil(t, entity) {
			assert.Equal(t, "P001", entity.Text)
		}
	})

	t.Run("no entities is a valid state", func(t *testing.T) {
		recognizer := new(MockEntityRecognizer)
		recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]entities.ExtractedEntity{}, nil)

		service := NewExtractionService(recognizer)
		utterance, entity := service.Extract(context.Background(), "list the lab catalog")

		assert.Nil(t, entity)
		assert.Equal(t, "list the lab catalog", utterance.Text)
	})

	t.Run("recognizer failure degrades to no entity", func(t *testing.T) {
		recognizer := new(MockEntityRecognizer)
		recognizer.On("Recognize", mock.Anything, mock.Anything).Return(nil, errors.New("model load failed"))

		service := NewExtractionService(recognizer)
		utterance, entity := service.Extract(context.Background(), "who is on shift")

		assert.Nil(t, entity)
		assert.Equal(t, "who is on shift", utterance.Text)
	})
}
