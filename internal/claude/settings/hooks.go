package settings

import (
	"errors"
)

// CommandFilter selects hook commands.
type CommandFilter func(HookCommand) bool

// AddHook appends command under matcher for event, creating the matcher when
// needed. An identical command under the same matcher is not added twice.
func (s *Settings) AddHook(event HookEvent, matcher string, command HookCommand) error {
	if command.Type == "" {
		return errors.New("command type cannot be empty")
	}
	if command.Command == "" {
		return errors.New("command cannot be empty")
	}

	if s.Hooks == nil {
		s.Hooks = make(map[HookEvent][]HookMatcher)
	}

	matchers := s.Hooks[event]
	for i := range matchers {
		if matchers[i].Matcher != matcher {
			continue
		}
		for _, existing := range matchers[i].Hooks {
			if existing.Type == command.Type && existing.Command == command.Command {
				return nil
			}
		}
		matchers[i].Hooks = append(matchers[i].Hooks, command)
		return nil
	}

	s.Hooks[event] = append(matchers, HookMatcher{
		Matcher: matcher,
		Hooks:   []HookCommand{command},
	})
	return nil
}

// RemoveCommands deletes every command under event selected by filter,
// dropping matchers left empty. It returns the number of commands removed.
func (s *Settings) RemoveCommands(event HookEvent, filter CommandFilter) int {
	matchers, ok := s.Hooks[event]
	if !ok {
		return 0
	}

	removed := 0
	kept := matchers[:0]
	for _, matcher := range matchers {
		commands := matcher.Hooks[:0]
		for _, command := range matcher.Hooks {
			if filter(command) {
				removed++
				continue
			}
			commands = append(commands, command)
		}
		if len(commands) == 0 {
			continue
		}
		matcher.Hooks = commands
		kept = append(kept, matcher)
	}

	if len(kept) == 0 {
		delete(s.Hooks, event)
	} else {
		s.Hooks[event] = kept
	}
	return removed
}

// FindCommands returns the matchers under event that hold a command selected
// by filter, narrowed to those commands.
func (s *Settings) FindCommands(event HookEvent, filter CommandFilter) []HookMatcher {
	var found []HookMatcher
	for _, matcher := range s.Hooks[event] {
		var commands []HookCommand
		for _, command := range matcher.Hooks {
			if filter(command) {
				commands = append(commands, command)
			}
		}
		if len(commands) > 0 {
			found = append(found, HookMatcher{Matcher: matcher.Matcher, Hooks: commands})
		}
	}
	return found
}
