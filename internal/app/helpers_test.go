package app

import (
	"github.com/abhisek/munhak/internal/screen"
	"github.com/abhisek/munhak/internal/screens/notes"
)

func notesScreen(env screen.Env) screen.Screen { return notes.New(env) }
