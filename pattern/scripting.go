package pattern

// Lua batch scripts: generate several files (or several geometries) in one go.

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	lua "github.com/yuin/gopher-lua"
)

// General tracking for a lua generator script
type ScriptState struct {
	FileDirectory string
	Arguments     []string
	Logs          strings.Builder
	Files         []*FileResult
}

// Everything a finished script produced
type ScriptResult struct {
	Logs  string
	Files []*FileResult
}

// Get full path to given file requested by the script. The system has a way to
// set the "working directory" for the whole script, that's all
func (state *ScriptState) FilePath(path string) string {
	if state.FileDirectory == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(state.FileDirectory, path)
}

// Add a function to the given lua state that actually tracks with our own state.
// Usually lua functions don't accept extra go parameters
func (state *ScriptState) AddFunction(name string, f func(*lua.LState, *ScriptState) int, L *lua.LState) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int { return f(L, state) }))
}

func pullString(table *lua.LTable, key string, done func(string)) bool {
	ttemp := table.RawGetString(key)
	switch tval := ttemp.(type) {
	case lua.LString:
		done(string(tval))
		return true
	case lua.LNumber:
		done(tval.String())
		return true
	}
	return false
}

func pullInt(table *lua.LTable, key string, done func(int)) bool {
	ttemp := table.RawGetString(key)
	tnum, ok := ttemp.(lua.LNumber)
	if ok {
		done(int(tnum))
	}
	return ok
}

func geometryTable(L *lua.LState, geometry Geometry) *lua.LTable {
	table := L.NewTable()
	table.RawSetString("bytes_per_cycle", lua.LNumber(geometry.BytesPerCycle))
	table.RawSetString("cycles_per_row", lua.LNumber(geometry.CyclesPerRow))
	table.RawSetString("total_size", lua.LNumber(geometry.TotalSize))
	table.RawSetString("rows", lua.LNumber(geometry.RowCount()))
	table.RawSetString("output_size", lua.LNumber(geometry.OutputSize()))
	return table
}

// generate{mode="integrity", output="x.dat", total_size=..., workers=...}
func luaGenerate(L *lua.LState, state *ScriptState) int {
	options := L.CheckTable(1)
	modeName := ModeLegacy.String()
	output := DefaultFilename
	workers := 1
	var geometry Geometry
	pullString(options, "mode", func(s string) { modeName = s })
	pullString(options, "output", func(s string) { output = s })
	pullInt(options, "workers", func(i int) { workers = i })
	pullInt(options, "bytes_per_cycle", func(i int) { geometry.BytesPerCycle = i })
	pullInt(options, "cycles_per_row", func(i int) { geometry.CyclesPerRow = i })
	if total, ok := options.RawGetString("total_size").(lua.LNumber); ok {
		geometry.TotalSize = uint64(total)
	}
	mode, err := ParseMode(modeName)
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	geometry.ReasonableDefaults(mode)
	result, err := GenerateFile(state.FilePath(output), mode, geometry, workers)
	if err != nil {
		L.RaiseError("Couldn't generate %s: %s", output, err)
		return 0
	}
	state.Files = append(state.Files, result)
	table := L.NewTable()
	table.RawSetString("filename", lua.LString(result.Filename))
	table.RawSetString("mode", lua.LString(result.Mode))
	table.RawSetString("length", lua.LNumber(result.Length))
	table.RawSetString("rows", lua.LNumber(result.Rows))
	table.RawSetString("records", lua.LNumber(result.Records))
	table.RawSetString("md5", lua.LString(result.MD5))
	L.Push(table)
	return 1
}

// preset("sequential") returns the default geometry of a mode
func luaPreset(L *lua.LState) int {
	mode, err := ParseMode(L.ToString(1))
	if err != nil {
		L.RaiseError("%s", err)
		return 0
	}
	L.Push(geometryTable(L, Preset(mode)))
	return 1
}

func luaArguments(L *lua.LState, state *ScriptState) int {
	for _, arg := range state.Arguments {
		L.Push(lua.LString(arg))
	}
	return len(state.Arguments)
}

// Script logs are kept (to return) and also echoed to the regular log
func luaLog(L *lua.LState, state *ScriptState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.Get(i).String())
	}
	line := strings.Join(parts, "\t")
	state.Logs.WriteString(line + "\n")
	log.Printf("[script] %s\n", line)
	return 0
}

// Simple function to decode a string into a lua table. Returns the table.
// Raises script error on any error.
func luaJson(L *lua.LState) int {
	str := L.ToString(1)
	var value interface{}
	err := json.Unmarshal([]byte(str), &value)
	if err != nil {
		L.RaiseError("Couldn't parse json: %s", err)
		return 0
	}
	L.Push(luaDecodeValue(L, value))
	return 1
}

func luaToml(L *lua.LState) int {
	tree, err := toml.Load(L.ToString(1))
	if err != nil {
		L.RaiseError("Couldn't parse toml: %s", err)
		return 0
	}
	L.Push(luaDecodeValue(L, tree.ToMap()))
	return 1
}

// Converts a decoded json/toml value to a lua value. Anything it doesn't know
// becomes nil.
func luaDecodeValue(L *lua.LState, value interface{}) lua.LValue {
	switch converted := value.(type) {
	case bool:
		return lua.LBool(converted)
	case float64:
		return lua.LNumber(converted)
	case int64:
		return lua.LNumber(converted)
	case string:
		return lua.LString(converted)
	case []interface{}:
		arr := L.CreateTable(len(converted), 0)
		for _, item := range converted {
			arr.Append(luaDecodeValue(L, item))
		}
		return arr
	case map[string]interface{}:
		tbl := L.CreateTable(0, len(converted))
		for key, item := range converted {
			tbl.RawSetH(lua.LString(key), luaDecodeValue(L, item))
		}
		return tbl
	}
	return lua.LNil
}

// Run a generator script. Files it generates are resolved against dir (if set)
func RunLuaGenerator(script string, arguments []string, dir string) (*ScriptResult, error) {
	state := ScriptState{
		FileDirectory: dir,
		Arguments:     arguments,
		Files:         make([]*FileResult, 0),
	}

	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("json", L.NewFunction(luaJson))
	L.SetGlobal("toml", L.NewFunction(luaToml))
	L.SetGlobal("preset", L.NewFunction(luaPreset))
	state.AddFunction("generate", luaGenerate, L)
	state.AddFunction("arguments", luaArguments, L)
	state.AddFunction("log", luaLog, L)

	err := L.DoString(script)
	result := ScriptResult{
		Logs:  state.Logs.String(),
		Files: state.Files,
	}
	if err != nil {
		return &result, fmt.Errorf("Script failed: %w", err)
	}
	return &result, nil
}
