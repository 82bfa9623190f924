package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// Scheduler owns the background maintenance jobs of the booking service.
type Scheduler struct {
	daily  gocron.Scheduler
	hourly *cron.Cron
}

// StartScheduler runs completeJob every day at 00:05 in loc and purgeJob at the top of every hour.
func StartScheduler(loc *time.Location, completeJob, purgeJob func()) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}

	daily, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = daily.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(completeJob),
	)
	if err != nil {
		return nil, err
	}

	hourly := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := hourly.AddFunc("0 * * * *", purgeJob); err != nil {
		_ = daily.Shutdown()
		return nil, err
	}

	daily.Start()
	hourly.Start()
	log.Printf("scheduler: started (complete bookings 00:05 %s, purge slot locks hourly)", loc)

	return &Scheduler{daily: daily, hourly: hourly}, nil
}

func (s *Scheduler) Stop() {
	if s == nil {
		return
	}
	if s.hourly != nil {
		<-s.hourly.Stop().Done()
	}
	if s.daily != nil {
		if err := s.daily.Shutdown(); err != nil {
			log.Printf("scheduler: shutdown: %v", err)
		}
	}
	log.Println("scheduler: stopped")
}
