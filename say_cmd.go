package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/banglaghori/banglaghori/internal/bangla"
	"github.com/banglaghori/banglaghori/internal/clock"
	"github.com/banglaghori/banglaghori/internal/speech"
)

var sayTextOnly bool

var sayCmd = &cobra.Command{
	Use:     "say",
	Short:   "Speak the current time once and exit",
	Long:    paragraph(fmt.Sprintf("\n%s the current time in Bengali, once, and exit. With --text the phrase is printed instead of spoken.", keyword("Speak"))),
	Example: paragraph("banglaghori say\nbanglaghori say --text\nbanglaghori say --voice bengali --rate 0.8"),
	Args:    cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		now := clock.System{}.Now()
		if sayTextOnly {
			fmt.Println(bangla.TimePhrase(now))
			return nil
		}

		announcer, err := buildAnnouncer()
		if err != nil {
			return err
		}
		defer announcer.Close() //nolint:errcheck

		// Engines load their voice inventory in the background. Give it a
		// moment so a Bengali voice can be bound instead of the fallback tag.
		deadline := time.After(2 * time.Second)
	wait:
		for !announcer.VoiceAvailable() {
			select {
			case _, ok := <-announcer.Events():
				if !ok {
					return speech.ErrAnnouncerClosed
				}
			case <-deadline:
				break wait
			}
		}

		if err := announcer.Announce(); err != nil {
			return fmt.Errorf("unable to speak: %w", err)
		}

		for ev := range announcer.Events() {
			switch ev.Kind {
			case speech.EventDone:
				return nil
			case speech.EventError:
				return fmt.Errorf("speech failed: %w", ev.Err)
			}
		}
		return nil
	},
}

func init() {
	sayCmd.Flags().BoolVarP(&sayTextOnly, "text", "t", false, "print the phrase instead of speaking it")
}
