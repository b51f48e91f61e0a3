package config_test

import (
	"fmt"

	"github.com/ridewindx/flybee/config"
)

func Example() {
	c, err := config.New(
		config.OptionProg("flybee"),
		config.OptionUsage("flybee [OPTIONS] [APP_MODULE]"),
		config.OptionNoExit(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := c.Load([]string{"-w", "4", "--bind", "0.0.0.0:9000"}); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(c.GetInt("workers"))
	fmt.Println(c.Get("bind"))
	// Output:
	// 4
	// 0.0.0.0:9000
}
