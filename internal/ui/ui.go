package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjack/internal/game"
)

// Terminal is the interactive pterm front end. It implements
// game.Terminal; all raw input validation lives here, with local
// re-prompts that never escalate.
type Terminal struct{}

func New() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Welcome() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Render()
	pterm.Info.Println("Welcome to Blackjack!")
}

func (t *Terminal) AskEnableCounter() bool {
	return t.askYesNo("Enable card counting helper? (y/N)")
}

func (t *Terminal) PlayAgain(balance float64) bool {
	pterm.Println()
	pterm.Info.Printfln("Your balance is $%.2f", balance)
	answer, _ := pterm.DefaultInteractiveTextInput.
		WithDefaultText("Press Enter to play a new hand, or type 'q' to exit").
		Show()
	return !strings.EqualFold(strings.TrimSpace(answer), "q")
}

func (t *Terminal) AskBet(balance float64) float64 {
	prompt := pterm.Sprintf("Enter your bet (Balance: $%.2f)", balance)
	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		bet, err := parseBet(raw, balance)
		switch err {
		case nil:
			return bet
		case errInvalidNumber:
			pterm.Error.Println("Please enter a valid number.")
		default:
			pterm.Error.Println("Invalid bet amount.")
		}
	}
}

var (
	errInvalidNumber = errors.New("not a valid number")
	errBetOutOfRange = errors.New("bet out of range")
)

// parseBet parses a raw bet entry and accepts it only when 0 < bet <= balance.
// The acceptance form matters: ParseFloat admits "nan", and every comparison
// against NaN is false, so NaN fails both conditions and is rejected.
func parseBet(raw string, balance float64) (float64, error) {
	bet, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errInvalidNumber
	}
	if bet > 0 && bet <= balance {
		return bet, nil
	}
	return 0, errBetOutOfRange
}

func (t *Terminal) ShowHands(player, dealer *game.Hand, hideDealer bool) {
	pbox := pterm.DefaultBox.WithLeftPadding(2).WithRightPadding(2)

	playerPanel := pterm.Panel{
		Data: pbox.WithTitle("You").Sprintf("%s (%d)", player, player.Total),
	}

	var dealerPanel pterm.Panel
	if hideDealer {
		dealerPanel = pterm.Panel{
			Data: pbox.WithTitle("Dealer showing").Sprintf("%s, ?", dealer.Cards[0]),
		}
	} else {
		dealerPanel = pterm.Panel{
			Data: pbox.WithTitle("Dealer").Sprintf("%s (%d)", dealer, dealer.Total),
		}
	}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{playerPanel, dealerPanel}}).Render()
}

func (t *Terminal) ShowCount(count int) {
	pterm.Info.Printfln("[Card Counter] Running count: %+d", count)
}

func (t *Terminal) AskDouble() bool {
	return t.askYesNo("Double down? Bet doubles for one extra card. (y/N)")
}

func (t *Terminal) AskAction(canSplit bool) game.Action {
	prompt := "Do you want to (H)it or (S)tand?"
	if canSplit {
		prompt = "Do you want to (H)it, (S)tand or (SP)lit?"
	}

	for {
		raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "h", "hit":
			return game.ActionHit
		case "s", "stand":
			return game.ActionStand
		case "sp", "split":
			if canSplit {
				return game.ActionSplit
			}
			pterm.Error.Println("Invalid action.")
		default:
			pterm.Error.Println("Invalid action.")
		}
	}
}

func (t *Terminal) ShowResult(r *game.Round, balance float64) {
	switch r.Outcome {
	case game.OutcomeBlackjackWin:
		pterm.Success.Printfln("Blackjack! You win $%.2f!", r.Settlement)
	case game.OutcomeBlackjackPush:
		pterm.Info.Println("Both you and the dealer have Blackjack! It's a push.")
	case game.OutcomeDealerBlackjack:
		pterm.Error.Printfln("Dealer has Blackjack. You lose $%.2f.", -r.Settlement)
	case game.OutcomePlayerBust:
		pterm.Error.Printfln("You busted with %d. You lose $%.2f.", r.Player.Total, -r.Settlement)
	case game.OutcomeDealerBust:
		pterm.Success.Printfln("Dealer busted with %d. You win $%.2f!", r.Dealer.Total, r.Settlement)
	case game.OutcomePlayerWin:
		pterm.Success.Printfln("You win $%.2f!", r.Settlement)
	case game.OutcomeDealerWin:
		pterm.Error.Printfln("You lose $%.2f.", -r.Settlement)
	case game.OutcomePush:
		pterm.Info.Println("It's a push (tie).")
	}
	pterm.Info.Printfln("Balance: $%.2f", balance)
}

func (t *Terminal) Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

func (t *Terminal) Goodbye(balance float64) {
	pterm.Println()
	pterm.Info.Printfln("Thanks for playing! Your final balance is $%.2f.", balance)
}

func (t *Terminal) askYesNo(prompt string) bool {
	answer, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
