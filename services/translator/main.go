// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/signosi/pkg/signlang"
	"github.com/AleutianAI/signosi/services/translator/assets"
	"github.com/AleutianAI/signosi/services/translator/config"
	"github.com/AleutianAI/signosi/services/translator/observability"
	"github.com/AleutianAI/signosi/services/translator/routes"
	"github.com/AleutianAI/signosi/services/translator/services"

	// --- OpenTelemetry imports ---
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	// Get the collector URL from the env var set in the compose file
	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = "signosi-otel-collector:4317"
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("translator-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(os.Getenv("TRANSLATOR_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("FATAL: Could not load the translator configuration: %v", err)
	}

	// --- Init the tracer ---
	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	observability.InitMetrics()

	vocab, err := signlang.LoadVocabulary(cfg.VocabularyPath)
	if err != nil {
		log.Fatalf("FATAL: Could not load the vocabulary: %v", err)
	}
	slog.Info("Loaded the sign vocabulary",
		"path", cfg.VocabularyPath, "words", vocab.WordCount(), "letters", vocab.LetterCount())

	var store assets.Store
	switch cfg.Store {
	case "gcs":
		gcsStore, err := assets.NewGCSStore(context.Background(), vocab, assets.GCSConfig{
			BucketName: cfg.GCS.Bucket,
			SAKeyPath:  cfg.GCS.SAKeyPath,
			URLTTL:     cfg.GCS.URLTTL,
		})
		if err != nil {
			log.Fatalf("FATAL: Could not initialize the GCS media store: %v", err)
		}
		defer gcsStore.Close()
		store = gcsStore
		slog.Info("Using GCS media backend", "bucket", cfg.GCS.Bucket)
	default:
		localStore, err := assets.NewLocalStore(vocab, cfg.MediaRoot, cfg.LandmarkRoot)
		if err != nil {
			log.Fatalf("FATAL: Could not initialize the local media store: %v", err)
		}
		store = localStore
		slog.Info("Using local media backend", "mediaRoot", cfg.MediaRoot)
	}

	// Warm the landmark cache so spelled tokens never wait on disk, then
	// put it in front of the store so landmark reads hit it first.
	if cfg.Cache.Path != "" || cfg.Cache.InMemory {
		cache, err := assets.OpenLandmarkCache(assets.CacheConfig{
			Path:     cfg.Cache.Path,
			InMemory: cfg.Cache.InMemory,
			TTL:      cfg.Cache.TTL,
			Logger:   logger,
		})
		if err != nil {
			log.Fatalf("FATAL: Could not open the landmark cache: %v", err)
		}
		defer cache.Close()
		loaded, err := cache.WarmFromDir(cfg.LandmarkRoot)
		if err != nil {
			slog.Warn("landmark cache warmup failed", "error", err)
		} else {
			slog.Info("Warmed the landmark cache", "units", loaded)
		}
		store = assets.NewCachedStore(store, cache)
	}

	rules, err := cfg.RuleChain()
	if err != nil {
		log.Fatalf("FATAL: Invalid rule chain configuration: %v", err)
	}
	engine := signlang.NewEngine(vocab, rules)

	svc := services.NewTranslationService(engine, store, observability.DefaultMetrics,
		services.Options{ExtraUnitThreshold: cfg.ExtraUnitThreshold})

	router := gin.Default()
	router.Use(otelgin.Middleware("translator-service"))

	routes.SetupRoutes(router, svc)
	log.Println("started up the container")

	log.Println("Starting the translator server on port ", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
