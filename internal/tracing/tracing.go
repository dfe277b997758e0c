package tracing

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// newJaegerExporter создает экспортер, который отправляет трейсы в Jaeger.
func newJaegerExporter(url string) (sdktrace.SpanExporter, error) {
	return jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
}

// InitTracerProvider настраивает и регистрирует OpenTelemetry-провайдер.
// При пустом jaegerURL экспорт не настраивается, спаны остаются локальными.
// Возвращает функцию остановки провайдера.
func InitTracerProvider(serviceName, jaegerURL string) (func(), error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(1.0)),
	}

	if jaegerURL != "" {
		exporter, err := newJaegerExporter(jaegerURL)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания Jaeger-экспортера: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)

	// W3C Trace Context в качестве глобального propagator'а
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if jaegerURL != "" {
		log.Printf("OpenTelemetry (Jaeger) инициализирован: %s", jaegerURL)
	} else {
		log.Println("OpenTelemetry инициализирован без экспорта трейсов.")
	}

	return func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Printf("Ошибка остановки TracerProvider: %v", err)
		}
	}, nil
}
