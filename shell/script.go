package shell

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

func getShell(L *lua.LState) *ShellController {
	shell := L.GetGlobal("fourline_shell")
	ud, ok := shell.(*lua.LUserData)
	if !ok {
		panic("luserdata not right type")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		panic("shellcontroller not right type")
	}
	return sc
}

type handler func(*ShellController, *shellcmd) (*Response, error)

// luaCommand wraps a shell command as a Lua function taking one string of
// arguments and returning the command's output.
func luaCommand(name string, h handler) lua.LGFunction {
	return func(L *lua.LState) int {
		var args []string
		if L.GetTop() > 0 {
			args = strings.Fields(L.ToString(1))
		}
		sc := getShell(L)
		r, err := h(sc, &shellcmd{cmd: name, args: args, options: CmdOptions{}})
		if err != nil {
			log.Err(err).Msg("error-executing-" + name)
			L.Push(lua.LString("ERROR: " + err.Error()))
			return 1
		}
		L.Push(lua.LString(r.message))
		// return number of results pushed to stack.
		return 1
	}
}

func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for script")
	}

	filepath := cmd.args[0]

	L := lua.NewState()
	defer L.Close()

	lsc := L.NewUserData()
	lsc.Value = sc

	L.SetGlobal("fourline_shell", lsc)
	L.SetGlobal("fourline_new", L.NewFunction(luaCommand("new", (*ShellController).newGame)))
	L.SetGlobal("fourline_click", L.NewFunction(luaCommand("click", (*ShellController).click)))
	L.SetGlobal("fourline_show", L.NewFunction(luaCommand("show", (*ShellController).show)))
	L.SetGlobal("fourline_position", L.NewFunction(luaCommand("position", (*ShellController).position)))
	L.SetGlobal("fourline_search", L.NewFunction(luaCommand("search", (*ShellController).search)))

	if err := L.DoFile(filepath); err != nil {
		log.Err(err).Msg("there was a error")
		return nil, err
	}
	return msg("script " + filepath + " finished"), nil
}
