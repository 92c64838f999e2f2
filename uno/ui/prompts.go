package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/player"
)

// readLine prints message and reads one trimmed line. "exit" and "quit" end
// the session, so does a closed input.
func (c *Console) readLine(message string) (string, error) {
	fmt.Fprint(c.out, message)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", consts.ErrorsInputClosed
		}
	}
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "exit", "quit":
		return "", consts.ErrorsExist
	}
	return line, nil
}

func (c *Console) promptYesNo(message string) (bool, error) {
	for {
		input, err := c.readLine(message)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.Println(color.Red.Paint("Please answer y or n"))
	}
}

func (c *Console) promptCardIndex(amount int) (int, error) {
	message := fmt.Sprintf("Play card (1-%d) or 'd' to draw: ", amount)
	for {
		input, err := c.readLine(message)
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(input, "d") {
			return player.DrawIndex, nil
		}
		number, err := strconv.Atoi(input)
		if err != nil {
			c.Println(color.Red.Paint("Enter a number or 'd'!"))
			continue
		}
		if number < 1 || number > amount {
			c.Println(color.Red.Paint("Invalid choice!"))
			continue
		}
		return number - 1, nil
	}
}

func (c *Console) promptColor() (color.Color, error) {
	message := fmt.Sprintf("Choose color (%s/%s/%s/%s): ",
		color.Red.Paint("R"),
		color.Blue.Paint("B"),
		color.Green.Paint("G"),
		color.Yellow.Paint("Y"),
	)
	for {
		input, err := c.readLine(message)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(input)
		if err != nil {
			c.Println(color.Red.Paint("Use R, B, G, or Y!"))
			continue
		}
		return chosenColor, nil
	}
}
