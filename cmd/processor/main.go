package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"go-image-intensity/internal/config"
	"go-image-intensity/internal/intensity"
	"go-image-intensity/internal/processor"
	"go-image-intensity/pkg/processingpb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lis, err := net.Listen("tcp", cfg.GRPCListenAddress)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", cfg.GRPCListenAddress, err)
	}

	server := grpc.NewServer()
	processingpb.RegisterImageProcessorServer(server, processor.NewServer(intensity.NewCalculator()))

	go func() {
		logrus.WithField("address", cfg.GRPCListenAddress).Info("Starting image processor")
		if err := server.Serve(lis); err != nil {
			logrus.WithError(err).Fatal("Failed to serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down processor...")
	server.GracefulStop()
	logrus.Info("Processor exited")
}
