package memory

import (
	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
)

func SeedDataSources() []datasource.Source {
	return []datasource.Source{
		{ID: 1, Name: "Rapsodo", Description: "Rapsodo pitching monitor CSV export"},
		{ID: 2, Name: "PitchLogic", Description: "PitchLogic smart-ball CSV export"},
		{ID: 3, Name: "Trackman", Description: "Trackman radar CSV export"},
		{ID: 4, Name: "Manual", Description: "Hand-entered pitch records"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, FirstName: "Miles", LastName: "Okafor", Throws: player.HandRight, Active: true, RapsodoID: "88421"},
		{ID: 2, FirstName: "Dane", LastName: "Whitlock", Throws: player.HandLeft, Active: true, TrackmanID: "TM-3307"},
		{ID: 3, FirstName: "Reyes", LastName: "Calloway", Throws: player.HandRight, Active: true},
	}
}
