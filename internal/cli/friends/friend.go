package friends

import (
	"fmt"

	"github.com/stride-cli/stride/internal/cli"
	"github.com/stride-cli/stride/internal/models"
)

// FriendCmd groups the manually maintained leaderboard peers.
type FriendCmd struct {
	Add    FriendAddCmd    `cmd:"" help:"Add a friend to the leaderboard."`
	List   FriendListCmd   `cmd:"" help:"List friends."`
	Edit   FriendEditCmd   `cmd:"" help:"Edit a friend's entry."`
	Delete FriendDeleteCmd `cmd:"" help:"Remove a friend."`
}

type FriendAddCmd struct {
	Name  string `arg:"" help:"Friend's display name."`
	XP    int    `help:"Friend's XP." default:"0"`
	Level int    `help:"Friend's level." default:"1"`
}

func (c *FriendAddCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	f, err := a.AddFriend(c.Name, c.XP, c.Level)
	if err != nil {
		return err
	}
	fmt.Printf("Added friend: %s (level %d, %d XP)\n", f.Name, f.Level, f.XP)
	return nil
}

type FriendListCmd struct{}

func (c *FriendListCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	friends := a.State().Friends
	if len(friends) == 0 {
		fmt.Println("No friends yet. Add one with 'stride friend add'.")
		return nil
	}
	for _, f := range friends {
		fmt.Printf("%s: level %d, %d XP", f.Name, f.Level, f.XP)
		if f.Streak > 0 {
			fmt.Printf(", 🔥 %d", f.Streak)
		}
		fmt.Println()
	}
	return nil
}

type FriendEditCmd struct {
	Name   string `arg:"" help:"Friend's display name."`
	Rename string `help:"New display name."`
	XP     int    `help:"New XP." default:"-1"`
	Level  int    `help:"New level." default:"-1"`
	Streak int    `help:"New current streak." default:"-1"`
}

func (c *FriendEditCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	var friend *models.Friend
	for i := range a.State().Friends {
		if a.State().Friends[i].Name == c.Name {
			friend = &a.State().Friends[i]
			break
		}
	}
	if friend == nil {
		return fmt.Errorf("friend %q not found", c.Name)
	}

	updated := friend.Clone()
	if c.Rename != "" {
		updated.Name = c.Rename
	}
	if c.XP >= 0 {
		updated.XP = c.XP
	}
	if c.Level >= 1 {
		updated.Level = c.Level
	}
	if c.Streak >= 0 {
		updated.Streak = c.Streak
	}

	if err := a.UpdateFriend(updated); err != nil {
		return err
	}
	fmt.Printf("Updated friend: %s\n", updated.Name)
	return nil
}

type FriendDeleteCmd struct {
	Name string `arg:"" help:"Friend's display name."`
}

func (c *FriendDeleteCmd) Run(ctx *cli.Context) error {
	a, err := ctx.App()
	if err != nil {
		return err
	}

	for _, f := range a.State().Friends {
		if f.Name == c.Name {
			if err := a.DeleteFriend(f.ID); err != nil {
				return err
			}
			fmt.Printf("Removed friend: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("friend %q not found", c.Name)
}
