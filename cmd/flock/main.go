package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/flock-social/flock/graph"
	"github.com/flock-social/flock/moderation"

	"github.com/carlmjohnson/versioninfo"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "flock",
		Usage:   "in-memory social graph and moderation engine",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug logging",
			EnvVars: []string{"FLOCK_DEBUG"},
		},
		&cli.StringFlag{
			Name:    "forbidden-words",
			Usage:   "path to JSON file with forbidden words",
			EnvVars: []string{"FLOCK_FORBIDDEN_WORDS"},
		},
	}

	app.Commands = []*cli.Command{
		demoCmd,
	}

	return app.Run(args)
}

var demoCmd = &cli.Command{
	Name:   "demo",
	Usage:  "run a scripted tour of the engine and print every analytics result",
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	logLevel := slog.LevelInfo
	if cctx.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	eng := moderation.NewEngine(graph.NewGraph(), []string{"spam", "scam"})
	if path := cctx.String("forbidden-words"); path != "" {
		if err := eng.LoadForbiddenWordsFile(path); err != nil {
			return fmt.Errorf("loading forbidden words (%s): %w", path, err)
		}
	}

	for _, u := range []string{"Marco", "Anna_00", "Fed_erico_98", "_laura_", "MIcHe_Le"} {
		if err := eng.RegisterUser(u); err != nil {
			return err
		}
	}

	texts := []struct{ author, text string }{
		{"Marco", "#Testo del #post di marco"},
		{"Marco", "Secondo #post di marco"},
		{"Anna_00", "Un saluto a tutti, specialmente a @MIcHe_Le"},
		{"Fed_erico_98", "#Testo che menziona @Anna_00"},
		{"_laura_", "Anche laura menziona @Anna_00, niente spam qui"},
		{"MIcHe_Le", "Offerta SPAMtastica, compra ora!"},
	}
	posts := []*graph.Post{}
	for _, pt := range texts {
		p, err := eng.NewPost(pt.author, pt.text)
		if err != nil {
			return err
		}
		if err := eng.PublishPost(p); err != nil {
			return err
		}
		posts = append(posts, p)
	}

	likes := []struct {
		post *graph.Post
		user string
	}{
		{posts[0], "Anna_00"},
		{posts[0], "_laura_"},
		{posts[1], "Anna_00"},
		{posts[2], "Marco"},
		{posts[3], "Anna_00"},
	}
	for _, l := range likes {
		if err := eng.Like(l.post, l.user); err != nil {
			return err
		}
	}

	if err := eng.Report("Anna_00", posts[5]); err != nil {
		return err
	}
	if err := eng.Report("_laura_", posts[5]); err != nil {
		return err
	}

	fmt.Printf("users: %s\n", strings.Join(eng.Users(), ", "))
	fmt.Printf("influencers: %s\n", strings.Join(eng.Influencers(), ", "))
	fmt.Printf("trending: %s\n", strings.Join(eng.Trending(), ", "))
	fmt.Printf("mentioned users: %s\n", strings.Join(eng.MentionedUsers(), ", "))

	followers, err := eng.GuessFollowers(posts)
	if err != nil {
		return err
	}
	for _, author := range eng.Users() {
		if likers, ok := followers[author]; ok {
			fmt.Printf("followers of %s: %s\n", author, strings.Join(likers, ", "))
		}
	}

	for _, p := range eng.Containing([]string{"menziona", "offerta"}) {
		fmt.Printf("matched: %s\n", p)
	}

	for _, p := range eng.ControversialPosts() {
		rs, err := eng.ReportingsForPost(p)
		if err != nil {
			return err
		}
		fmt.Printf("controversial: %s (%d reports)\n", p, len(rs))
		for _, r := range rs {
			fmt.Printf("  %s\n", r)
		}
	}

	return nil
}
