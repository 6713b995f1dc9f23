package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.liftoff.dev/liftoff/internal/core/domain"
)

func (c *CLI) newNotifyCmd() *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Drive the notification workflow against a booted simulator",
	}
	cmd.PersistentFlags().StringVarP(&device, "device", "d", "", "Device UDID or name")

	cmd.AddCommand(c.newNotifySendCmd(&device))
	cmd.AddCommand(c.newNotifyScheduleCmd(&device))
	cmd.AddCommand(c.newNotifyCancelCmd(&device))
	cmd.AddCommand(c.newNotifyDismissCmd(&device))
	cmd.AddCommand(c.newNotifyBadgeCmd(&device))
	cmd.AddCommand(c.newNotifyPermissionsCmd(&device))
	cmd.AddCommand(c.newNotifyCategoriesCmd(&device))

	return cmd
}

func (c *CLI) newNotifyCategoriesCmd(device *string) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Register the configured notification categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			if _, err := a.Notifier(cmd.Context(), *device); err != nil {
				return err
			}

			for _, cat := range a.Categories() {
				cmd.Printf("%s", cat.ID)
				for _, action := range cat.Actions {
					cmd.Printf(" %s", action.ID)
				}
				cmd.Printf("\n")
			}
			return nil
		},
	}
}

func (c *CLI) newNotifySendCmd(device *string) *cobra.Command {
	var (
		title    string
		body     string
		sound    string
		category string
		badge    int
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Deliver a notification immediately",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}

			content := domain.NotificationContent{
				Title:    title,
				Body:     body,
				Sound:    sound,
				Category: category,
			}
			if cmd.Flags().Changed("badge") {
				content.Badge = &badge
			}

			return n.Schedule(cmd.Context(), domain.NotificationRequest{
				Content: content,
				Trigger: domain.Trigger{Kind: domain.TriggerImmediate},
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().StringVar(&sound, "sound", "", "Notification sound")
	cmd.Flags().StringVar(&category, "category", "", "Notification category identifier")
	cmd.Flags().IntVar(&badge, "badge", 0, "Badge count set on delivery")

	return cmd
}

func (c *CLI) newNotifyScheduleCmd(device *string) *cobra.Command {
	var (
		title    string
		body     string
		id       string
		after    time.Duration
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule a delayed or repeating notification",
		Long: `Schedule a delayed or repeating notification.

Triggers fire from this process, so the command stays attached until
interrupted. Use cancel with the printed identifier to remove a pending
notification.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if after <= 0 && interval <= 0 {
				return fmt.Errorf("either --after or --every must be positive")
			}

			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}

			trigger := domain.Trigger{Kind: domain.TriggerDelay, Delay: after}
			if interval > 0 {
				trigger = domain.Trigger{Kind: domain.TriggerInterval, Delay: interval}
			}

			req := domain.NotificationRequest{
				ID:      id,
				Content: domain.NotificationContent{Title: title, Body: body},
				Trigger: trigger,
			}
			if err := n.Schedule(cmd.Context(), req); err != nil {
				return err
			}

			cmd.Printf("scheduled %s\n", req.ID)
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().StringVar(&id, "id", "", "Request identifier (generated when empty)")
	cmd.Flags().DurationVar(&after, "after", 0, "Deliver once after this delay")
	cmd.Flags().DurationVar(&interval, "every", 0, "Deliver repeatedly on this interval")

	return cmd
}

func (c *CLI) newNotifyCancelCmd(device *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}
			return n.Cancel(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newNotifyDismissCmd(device *string) *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss a delivered notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}
			return n.Dismiss(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newNotifyBadgeCmd(device *string) *cobra.Command {
	var set int

	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Get or set the app icon badge count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("set") {
				return n.SetBadge(cmd.Context(), set)
			}

			count, err := n.Badge(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%d\n", count)
			return nil
		},
	}

	cmd.Flags().IntVar(&set, "set", 0, "Set the badge to this count (0 clears)")

	return cmd
}

func (c *CLI) newNotifyPermissionsCmd(device *string) *cobra.Command {
	var request bool

	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "Query or request notification permissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.App(cmd)
			if err != nil {
				return err
			}
			n, err := a.Notifier(cmd.Context(), *device)
			if err != nil {
				return err
			}

			var status domain.PermissionStatus
			if request {
				status, err = n.RequestPermissions(cmd.Context())
			} else {
				status, err = n.Permissions(cmd.Context())
			}
			if err != nil {
				return err
			}

			cmd.Printf("%s\n", status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&request, "request", false, "Request permissions instead of querying")

	return cmd
}
