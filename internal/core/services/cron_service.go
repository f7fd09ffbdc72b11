package services

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CronService runs the background housekeeping jobs. The only job so far
// is the chat conversation sweep.
type CronService struct {
	cron *cron.Cron
	chat *ChatService
	log  *zap.Logger
}

// NewCronService creates a new cron service
func NewCronService(chat *ChatService, log *zap.Logger) *CronService {
	return &CronService{cron: cron.New(), chat: chat, log: log}
}

// Start registers the jobs and launches the scheduler.
func (s *CronService) Start() {
	s.cron.AddFunc("@every 10m", func() {
		s.chat.EvictStale(ChatIdleTimeout)
	})
	s.cron.Start()
	s.log.Info("cron service started")
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("cron service stopped")
}
