// Command subscribe tails the keyword-dataset topic and logs a summary of
// each published run, the way downstream campaign-construction services
// consume the pipeline's output.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sachin9536/SEM-Campaign-Automation/config"
	"github.com/sachin9536/SEM-Campaign-Automation/report"
	"github.com/sachin9536/SEM-Campaign-Automation/shared/kafka"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

func main() {
	cfg := config.Load()
	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal("KAFKA_BOOTSTRAP_SERVERS is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
	}()

	handler := &kafka.TypedMessageHandler[types.DiscoveryResult]{
		Validate: func(msg *types.DiscoveryResult) bool {
			return msg.KeywordCount > 0
		},
		Process: func(ctx context.Context, msg *types.DiscoveryResult) error {
			summary := report.Summarize(msg.Keywords)
			log.Printf("📥 Keyword dataset received: %d keywords (business type %q)",
				msg.KeywordCount, msg.BusinessType)
			log.Printf("   high volume: %d, high difficulty: %d, avg competition: %.2f",
				summary.HighVolumeKeywords, summary.HighDifficultyKeywords, summary.AverageCompetition)
			return nil
		},
		AlwaysMark: true,
	}

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: "keyword-dataset-subscriber",
		Handler: handler,
	})
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start Kafka consumer: %v", err)
	}

	<-ctx.Done()
}
