package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RegisterModules registers all engine.* Lua tables into L.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L with log, hero, grant_skill,
// fill_skills and teach_spell entries.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()

	logTable := L.NewTable()
	L.SetField(logTable, "debug", L.NewFunction(m.luaLog(zap.DebugLevel)))
	L.SetField(logTable, "info", L.NewFunction(m.luaLog(zap.InfoLevel)))
	L.SetField(logTable, "warn", L.NewFunction(m.luaLog(zap.WarnLevel)))
	L.SetField(logTable, "error", L.NewFunction(m.luaLog(zap.ErrorLevel)))
	L.SetField(engine, "log", logTable)

	L.SetField(engine, "hero", L.NewFunction(m.luaHero))
	L.SetField(engine, "grant_skill", L.NewFunction(m.luaGrantSkill))
	L.SetField(engine, "fill_skills", L.NewFunction(m.luaFillSkills))
	L.SetField(engine, "teach_spell", L.NewFunction(m.luaTeachSpell))

	L.SetGlobal("engine", engine)
}

func (m *Manager) luaLog(level zapcore.Level) lua.LGFunction {
	return func(L *lua.LState) int {
		msg := L.CheckString(1)
		if ce := m.logger.Check(level, msg); ce != nil {
			ce.Write(zap.String("source", "lua"))
		}
		return 0
	}
}

// luaHero implements engine.hero(name) -> table|nil.
func (m *Manager) luaHero(L *lua.LState) int {
	name := L.CheckString(1)
	if m.GetHero == nil {
		L.Push(lua.LNil)
		return 1
	}
	info := m.GetHero(name)
	if info == nil {
		L.Push(lua.LNil)
		return 1
	}
	t := L.NewTable()
	L.SetField(t, "name", lua.LString(info.Name))
	L.SetField(t, "race", lua.LString(info.Race))
	L.SetField(t, "level", lua.LNumber(info.Level))
	L.SetField(t, "skill_count", lua.LNumber(info.SkillCount))
	L.SetField(t, "total_level", lua.LNumber(info.TotalLevel))
	L.Push(t)
	return 1
}

// luaGrantSkill implements engine.grant_skill(hero, skill, level) -> bool.
// Returns false when the roster is full or the grant was rejected.
func (m *Manager) luaGrantSkill(L *lua.LState) int {
	heroName := L.CheckString(1)
	skillKey := L.CheckString(2)
	level := L.CheckInt(3)
	if m.GrantSkill == nil {
		L.Push(lua.LFalse)
		return 1
	}
	applied, err := m.GrantSkill(heroName, skillKey, level)
	if err != nil {
		L.RaiseError("grant_skill: %s", err.Error())
		return 0
	}
	L.Push(lua.LBool(applied))
	return 1
}

// luaFillSkills implements engine.fill_skills(hero, skill, level).
func (m *Manager) luaFillSkills(L *lua.LState) int {
	heroName := L.CheckString(1)
	skillKey := L.CheckString(2)
	level := L.CheckInt(3)
	if m.FillSkills == nil {
		return 0
	}
	if err := m.FillSkills(heroName, skillKey, level); err != nil {
		L.RaiseError("fill_skills: %s", err.Error())
	}
	return 0
}

// luaTeachSpell implements engine.teach_spell(hero, spell) -> bool.
func (m *Manager) luaTeachSpell(L *lua.LState) int {
	heroName := L.CheckString(1)
	spellName := L.CheckString(2)
	if m.TeachSpell == nil {
		L.Push(lua.LFalse)
		return 1
	}
	if err := m.TeachSpell(heroName, spellName); err != nil {
		L.RaiseError("teach_spell: %s", err.Error())
		return 0
	}
	L.Push(lua.LTrue)
	return 1
}
