/*
Package runner implements the interactive loop and I/O orchestration for menu navigation.

It acts as the bridge between the stateless navigation core (ports.Navigator)
and the outside world: each iteration renders the active menu, reads one line
and feeds it back to the navigator until the root menu terminates.

# Key Components

  - Runner: The main loop. Exhausted input ends it gracefully.
  - IOHandler: Decouples how screens are shown and inputs are read.
  - TextHandler: A standard implementation for interactive CLI usage.
  - JSONHandler: JSON-Lines IO for scripted or headless use.
  - SanitizeInput: Size, UTF-8 and control character checks on every line.

# Usage

	r := runner.NewRunner(
		runner.WithIO(os.Stdin, os.Stdout),
		runner.WithSignals(true),
	)

	if err := r.Run(ctx, engine, root); err != nil {
		log.Fatal(err)
	}
*/
package runner
