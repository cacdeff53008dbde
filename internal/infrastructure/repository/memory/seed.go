package memory

import (
	"github.com/pucklabs/fantasy-hockey/internal/domain/player"
	"github.com/pucklabs/fantasy-hockey/internal/domain/team"
)

const LeagueIDDemoHockey = "demo-hockey-2026"

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "demo-icehawks", LeagueID: LeagueIDDemoHockey, Name: "Harbor Icehawks", Short: "HIH"},
		{ID: "demo-northmen", LeagueID: LeagueIDDemoHockey, Name: "Kirkwall Northmen", Short: "KNM"},
		{ID: "demo-glaciers", LeagueID: LeagueIDDemoHockey, Name: "Summit Glaciers", Short: "SGL"},
		{ID: "demo-foundry", LeagueID: LeagueIDDemoHockey, Name: "Ironside Foundry", Short: "IFD"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		// Goalies. demo-g-07 and demo-g-08 carry no recorded score and
		// rely on the configured draft baseline.
		{ID: "demo-g-01", LeagueID: LeagueIDDemoHockey, Name: "Anders Lindqvist", Position: player.PositionGoalie, Score: 78},
		{ID: "demo-g-02", LeagueID: LeagueIDDemoHockey, Name: "Marek Dvorak", Position: player.PositionGoalie, Score: 74},
		{ID: "demo-g-03", LeagueID: LeagueIDDemoHockey, Name: "Cole Brennan", Position: player.PositionGoalie, Score: 69},
		{ID: "demo-g-04", LeagueID: LeagueIDDemoHockey, Name: "Ilya Morozov", Position: player.PositionGoalie, Score: 66},
		{ID: "demo-g-05", LeagueID: LeagueIDDemoHockey, Name: "Jesse Kallio", Position: player.PositionGoalie, Score: 61},
		{ID: "demo-g-06", LeagueID: LeagueIDDemoHockey, Name: "Tomas Ruzicka", Position: player.PositionGoalie, Score: 58},
		{ID: "demo-g-07", LeagueID: LeagueIDDemoHockey, Name: "Owen McAllister", Position: player.PositionGoalie, Score: 0},
		{ID: "demo-g-08", LeagueID: LeagueIDDemoHockey, Name: "Viktor Hallberg", Position: player.PositionGoalie, Score: 0},

		// Centers.
		{ID: "demo-c-01", LeagueID: LeagueIDDemoHockey, Name: "Lukas Stenberg", Position: player.PositionCenter, Score: 96},
		{ID: "demo-c-02", LeagueID: LeagueIDDemoHockey, Name: "Danny Okafor", Position: player.PositionCenter, Score: 91},
		{ID: "demo-c-03", LeagueID: LeagueIDDemoHockey, Name: "Petr Havlicek", Position: player.PositionCenter, Score: 85},
		{ID: "demo-c-04", LeagueID: LeagueIDDemoHockey, Name: "Ryan Callahan", Position: player.PositionCenter, Score: 79},
		{ID: "demo-c-05", LeagueID: LeagueIDDemoHockey, Name: "Emil Virtanen", Position: player.PositionCenter, Score: 72, Unavailable: true},
		{ID: "demo-c-06", LeagueID: LeagueIDDemoHockey, Name: "Jack Rourke", Position: player.PositionCenter, Score: 64},

		// Left wings.
		{ID: "demo-lw-01", LeagueID: LeagueIDDemoHockey, Name: "Mikko Salmela", Position: player.PositionLeftWing, Score: 93},
		{ID: "demo-lw-02", LeagueID: LeagueIDDemoHockey, Name: "Brett Doyle", Position: player.PositionLeftWing, Score: 87},
		{ID: "demo-lw-03", LeagueID: LeagueIDDemoHockey, Name: "Stefan Kovac", Position: player.PositionLeftWing, Score: 80},
		{ID: "demo-lw-04", LeagueID: LeagueIDDemoHockey, Name: "Aleksi Niemi", Position: player.PositionLeftWing, Score: 75},
		{ID: "demo-lw-05", LeagueID: LeagueIDDemoHockey, Name: "Carter Whelan", Position: player.PositionLeftWing, Score: 68},
		{ID: "demo-lw-06", LeagueID: LeagueIDDemoHockey, Name: "Nils Bergstrom", Position: player.PositionLeftWing, Score: 60},

		// Right wings.
		{ID: "demo-rw-01", LeagueID: LeagueIDDemoHockey, Name: "Dmitri Volkov", Position: player.PositionRightWing, Score: 94},
		{ID: "demo-rw-02", LeagueID: LeagueIDDemoHockey, Name: "Sean Gallagher", Position: player.PositionRightWing, Score: 88},
		{ID: "demo-rw-03", LeagueID: LeagueIDDemoHockey, Name: "Janne Korhonen", Position: player.PositionRightWing, Score: 82},
		{ID: "demo-rw-04", LeagueID: LeagueIDDemoHockey, Name: "Marco Bellini", Position: player.PositionRightWing, Score: 76, Unavailable: true},
		{ID: "demo-rw-05", LeagueID: LeagueIDDemoHockey, Name: "Tyler Brandt", Position: player.PositionRightWing, Score: 70},
		{ID: "demo-rw-06", LeagueID: LeagueIDDemoHockey, Name: "Oskar Lindgren", Position: player.PositionRightWing, Score: 62},

		// Defensemen.
		{ID: "demo-d-01", LeagueID: LeagueIDDemoHockey, Name: "Erik Soderberg", Position: player.PositionDefense, Score: 92},
		{ID: "demo-d-02", LeagueID: LeagueIDDemoHockey, Name: "Matt Kowalski", Position: player.PositionDefense, Score: 89},
		{ID: "demo-d-03", LeagueID: LeagueIDDemoHockey, Name: "Antti Rautio", Position: player.PositionDefense, Score: 84},
		{ID: "demo-d-04", LeagueID: LeagueIDDemoHockey, Name: "Pavel Cerny", Position: player.PositionDefense, Score: 81},
		{ID: "demo-d-05", LeagueID: LeagueIDDemoHockey, Name: "Liam Fitzgerald", Position: player.PositionDefense, Score: 77},
		{ID: "demo-d-06", LeagueID: LeagueIDDemoHockey, Name: "Henrik Dahl", Position: player.PositionDefense, Score: 73},
		{ID: "demo-d-07", LeagueID: LeagueIDDemoHockey, Name: "Josh Tremblay", Position: player.PositionDefense, Score: 69},
		{ID: "demo-d-08", LeagueID: LeagueIDDemoHockey, Name: "Karl Janson", Position: player.PositionDefense, Score: 65, Unavailable: true},
		{ID: "demo-d-09", LeagueID: LeagueIDDemoHockey, Name: "Nico Baumann", Position: player.PositionDefense, Score: 59},
		{ID: "demo-d-10", LeagueID: LeagueIDDemoHockey, Name: "Brady Olsen", Position: player.PositionDefense, Score: 54},
	}
}
