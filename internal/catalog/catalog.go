// ABOUTME: Read-only exercise catalog referenced by exerciseId.
// ABOUTME: Workouts and routines snapshot the catalog name when an exercise is added.
package catalog

import (
	"slices"
	"strings"
)

// Exercise is one catalog entry.
type Exercise struct {
	ID               string   `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Muscle           string   `json:"muscle" yaml:"muscle"`
	SecondaryMuscles []string `json:"secondaryMuscles" yaml:"secondary_muscles"`
	Equipment        string   `json:"equipment" yaml:"equipment"`
	Level            string   `json:"level" yaml:"level"`
}

var exercises = []Exercise{
	{ID: "1", Name: "Press de Banca", Muscle: "Pecho", SecondaryMuscles: []string{"Tríceps", "Hombros"}, Equipment: "Barra", Level: "Intermedio"},
	{ID: "2", Name: "Press Inclinado con Mancuernas", Muscle: "Pecho", SecondaryMuscles: []string{"Hombros", "Tríceps"}, Equipment: "Mancuernas", Level: "Principiante"},
	{ID: "3", Name: "Aperturas", Muscle: "Pecho", SecondaryMuscles: []string{"Hombros"}, Equipment: "Mancuernas/Máquina", Level: "Principiante"},
	{ID: "4", Name: "Dominadas", Muscle: "Espalda", SecondaryMuscles: []string{"Bíceps", "Antebrazos"}, Equipment: "Barra", Level: "Avanzado"},
	{ID: "5", Name: "Remo con Barra", Muscle: "Espalda", SecondaryMuscles: []string{"Bíceps", "Isquiotibiales"}, Equipment: "Barra", Level: "Intermedio"},
	{ID: "6", Name: "Jalón al Pecho", Muscle: "Espalda", SecondaryMuscles: []string{"Bíceps"}, Equipment: "Polea", Level: "Principiante"},
	{ID: "7", Name: "Sentadilla Tradicional", Muscle: "Piernas", SecondaryMuscles: []string{"Glúteos", "Core"}, Equipment: "Barra", Level: "Intermedio"},
	{ID: "8", Name: "Peso Muerto", Muscle: "Piernas", SecondaryMuscles: []string{"Espalda Baja", "Trapecios"}, Equipment: "Barra", Level: "Avanzado"},
	{ID: "9", Name: "Zancadas", Muscle: "Piernas", SecondaryMuscles: []string{"Glúteos", "Core"}, Equipment: "Mancuernas", Level: "Principiante"},
	{ID: "10", Name: "Prensa de Piernas", Muscle: "Piernas", SecondaryMuscles: []string{"Cuádriceps", "Glúteos"}, Equipment: "Máquina", Level: "Principiante"},
	{ID: "11", Name: "Press Militar", Muscle: "Hombros", SecondaryMuscles: []string{"Tríceps", "Core"}, Equipment: "Barra/Mancuernas", Level: "Intermedio"},
	{ID: "12", Name: "Elevaciones Laterales", Muscle: "Hombros", SecondaryMuscles: []string{"Trapecios"}, Equipment: "Mancuernas", Level: "Principiante"},
	{ID: "13", Name: "Curl con Barra", Muscle: "Brazos", SecondaryMuscles: []string{"Antebrazos"}, Equipment: "Barra", Level: "Principiante"},
	{ID: "14", Name: "Fondos en Paralelas", Muscle: "Brazos", SecondaryMuscles: []string{"Pecho", "Hombros"}, Equipment: "Peso Corporal", Level: "Intermedio"},
	{ID: "15", Name: "Plancha (Plank)", Muscle: "Core", SecondaryMuscles: []string{"Hombros"}, Equipment: "Peso Corporal", Level: "Principiante"},
	{ID: "16", Name: "Crunches", Muscle: "Core", SecondaryMuscles: []string{}, Equipment: "Peso Corporal", Level: "Principiante"},
	{ID: "17", Name: "Elevación de Piernas", Muscle: "Core", SecondaryMuscles: []string{"Flexores de cadera"}, Equipment: "Barra/Suelo", Level: "Intermedio"},
}

var byID = func() map[string]int {
	m := make(map[string]int, len(exercises))
	for i, e := range exercises {
		m[e.ID] = i
	}
	return m
}()

func (e Exercise) clone() Exercise {
	e.SecondaryMuscles = slices.Clone(e.SecondaryMuscles)
	return e
}

// Lookup returns the exercise with the given id.
func Lookup(id string) (Exercise, bool) {
	i, ok := byID[id]
	if !ok {
		return Exercise{}, false
	}
	return exercises[i].clone(), true
}

// All returns every exercise in catalog order.
func All() []Exercise {
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		out[i] = e.clone()
	}
	return out
}

// ByMuscle returns the exercises whose primary muscle matches, ignoring case.
func ByMuscle(muscle string) []Exercise {
	var out []Exercise
	for _, e := range exercises {
		if strings.EqualFold(e.Muscle, muscle) {
			out = append(out, e.clone())
		}
	}
	return out
}

// SnapshotName is the name to store alongside exerciseId. A caller-supplied
// name wins; otherwise the catalog name is used, and an unknown id falls
// back to the id itself.
func SnapshotName(id, name string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	if e, ok := Lookup(id); ok {
		return e.Name
	}
	return id
}
