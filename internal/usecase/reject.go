package usecase

import (
	"context"
	"errors"

	"github.com/Gunvolt24/grubdash/internal/domain"
	"github.com/Gunvolt24/grubdash/internal/ports"
	"github.com/Gunvolt24/grubdash/pkg/metrics"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// reject фиксирует отказ: доменные ошибки — warn + счётчик, остальные — error + статус спана.
func reject(ctx context.Context, log ports.Logger, span trace.Span, resource string, err error) error {
	kind := domain.KindOf(err)
	if kind == domain.KindUnknown {
		log.Errorf(ctx, "%s request failed: %v", resource, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	metrics.RequestRejections.WithLabelValues(resource, kind.String()).Inc()
	log.Warnf(ctx, "%s request rejected kind=%s: %v", resource, kind, err)
	span.SetStatus(codes.Error, kind.String())
	return err
}

// lost переводит "запись пропала между поиском и записью" в NotFound.
func lost(err error, format string, id string) error {
	if errors.Is(err, ports.ErrRecordNotFound) {
		return domain.NotFound(format, id)
	}
	return err
}
