package sim

import (
	"github.com/abiosoft/ishell/v2"
)

// NewShell creates an interactive shell with one command per simulator Command. The drive
// state is printed after every successful command
func NewShell(s *Simulator) *ishell.Shell {
	shell := ishell.New()
	shell.Println("joydrive simulator shell")

	for _, cmd := range commands {
		shell.AddCmd(&ishell.Cmd{
			Name:     cmd.Name,
			Help:     cmd.Description,
			LongHelp: cmd.Usage() + "\n" + cmd.Description,
			Func: func(c *ishell.Context) {
				err := s.Exec(cmd.Name, c.Args...)
				if err != nil {
					c.Println("error:", err.Error())
					return
				}
				c.Println(s.Summary())
			},
		})
	}

	return shell
}
