// Command mazegen orders one maze from a factory and prints it.
//
// Settings come from MAZE_* environment variables and an optional .env file;
// flags override them. With MAZE_REDIS_ADDR (or -redis) set, finished mazes
// are cached in Redis and shared between runs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/cache"
	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/factory"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "`file` with MAZE_* settings (default .env when present)")
	level := fs.Int("level", 0, "skill level 0-15")
	method := fs.String("method", "", "builder: dfs, prim, kruskal or boruvka")
	perfect := fs.Bool("perfect", true, "perfect maze without rooms or loops")
	seed := fs.Int64("seed", 0, "RNG seed (default random)")
	redisAddr := fs.String("redis", "", "redis `host:port` for the maze cache")
	statsOnly := fs.Bool("stats", false, "print statistics without the maze")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.SkillLevel = *level
		case "method":
			m, err := builder.ParseMethod(*method)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Method = m
		case "perfect":
			cfg.Perfect = *perfect
		case "seed":
			cfg.Seed, cfg.HasSeed = *seed, true
		case "redis":
			cfg.RedisAddr = *redisAddr
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if !cfg.HasSeed {
		cfg.Seed = time.Now().UnixNano()
	}

	log := cfg.NewLogger(stderr)
	opts := []factory.Option{factory.WithLogger(log)}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		if c, ok := redisCache(ctx, client, cfg, log); ok {
			opts = append(opts, factory.WithCache(c))
		}
	}

	m, err := order(ctx, factory.New(opts...), cfg.Order(), log)
	if err != nil {
		return err
	}
	if !*statsOnly {
		fmt.Fprint(stdout, m.Floorplan.String())
	}
	printStats(stdout, m)

	return nil
}

// redisCache returns a Redis cache when the server answers a ping.
func redisCache(ctx context.Context, client *redis.Client, cfg config.Config, log logrus.FieldLogger) (*cache.Redis, bool) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.RedisAddr).Warn("redis unavailable, cache disabled")
		return nil, false
	}
	return cache.NewRedis(client, cache.WithTTL(cfg.CacheTTL)), true
}

// order runs o on f and waits for the maze. Canceling ctx cancels the job.
func order(ctx context.Context, f *factory.Factory, o factory.Order, log logrus.FieldLogger) (*factory.Maze, error) {
	var (
		maze    *factory.Maze
		failure error
	)
	recv := factory.ReceiverFuncs{
		OnProgress: func(p int) { log.WithField("percent", p).Debug("progress") },
		OnDeliver:  func(m *factory.Maze) { maze = m },
		OnFail:     func(err error) { failure = err },
	}
	ok, err := f.Order(o, recv)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("factory busy")
	}

	done := make(chan struct{})
	go func() {
		f.WaitTillDelivered()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		f.Cancel()
		<-done
		return nil, ctx.Err()
	}

	if failure != nil {
		return nil, failure
	}
	if maze == nil {
		return nil, errors.New("no maze delivered")
	}
	return maze, nil
}

func printStats(w io.Writer, m *factory.Maze) {
	fp := m.Floorplan
	exit, _ := fp.Exit()
	fmt.Fprintf(w, "id:       %s\n", m.ID)
	fmt.Fprintf(w, "size:     %dx%d (skill level %d)\n", fp.Width(), fp.Height(), m.Order.SkillLevel)
	fmt.Fprintf(w, "method:   %s, seed %d, perfect %t\n", m.Order.Method, m.Order.Seed, m.Order.Perfect)
	fmt.Fprintf(w, "rooms:    %d\n", fp.Rooms())
	fmt.Fprintf(w, "removed:  %d of %d interior walls\n", fp.RemovedCount(), fp.InteriorWallboards())
	fmt.Fprintf(w, "exit:     %s\n", exit)
	fmt.Fprintf(w, "start:    %s, %d steps from the exit\n", m.Start, m.Distances.MaxDistance())
}
