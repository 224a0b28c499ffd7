package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/fulldump/musicdiary/bootstrap"
	"github.com/fulldump/musicdiary/configuration"
)

var banner = `
 __  __           _       ____  _                  
|  \/  |_   _ ___(_) ___ |  _ \(_) __ _ _ __ _   _ 
| |\/| | | | / __| |/ __|| | | | |/ _' | '__| | | |
| |  | | |_| \__ \ | (__ | |_| | | (_| | |  | |_| |
|_|  |_|\__,_|___/_|\___||____/|_|\__,_|_|   \__, |
                                             |___/ 
                          version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	start, _, err := bootstrap.Bootstrap(&c)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	start()
}
