package usecase

// Read failure notifications.
const (
	MsgFetchCountriesFailed             = "Failed to fetch countries"
	MsgFetchCountryFailed               = "Failed to fetch country details"
	MsgFetchCompetitionsFailed          = "Failed to fetch competitions"
	MsgFetchCompetitionFailed           = "Failed to fetch competition details"
	MsgFetchMatchesFailed               = "Failed to fetch matches"
	MsgFetchMatchFailed                 = "Failed to fetch match details"
	MsgFetchWorldRankingsFailed         = "Failed to fetch world rankings"
	MsgFetchConfederationRankingsFailed = "Failed to fetch confederation rankings"
	MsgFetchRankingHistoryFailed        = "Failed to fetch ranking history"
	MsgFetchStandingsFailed             = "Failed to fetch standings"
	MsgFetchStatisticsFailed            = "Failed to fetch competition statistics"
	MsgFetchHeadToHeadFailed            = "Failed to fetch head to head"
	MsgFetchMatchEventsFailed           = "Failed to fetch match events"
	MsgLoadInitialDataFailed            = "Failed to load initial data"
)

// Mutation outcomes.
const (
	MsgCountryCreated        = "Country created successfully"
	MsgCountryUpdated        = "Country updated successfully"
	MsgCountryDeleted        = "Country deleted successfully"
	MsgCompetitionCreated    = "Competition created successfully"
	MsgCompetitionUpdated    = "Competition updated successfully"
	MsgCompetitionDeleted    = "Competition deleted successfully"
	MsgParticipantsAdded     = "Participants added successfully"
	MsgParticipantRemoved    = "Participant removed successfully"
	MsgMatchCreated          = "Match created successfully"
	MsgMatchSimulated        = "Match simulated successfully"
	MsgMatchResultUpdated    = "Match result updated successfully"
	MsgMatchDeleted          = "Match deleted successfully"
	MsgEventAdded            = "Event added successfully"
	MsgCreateCountryFailed   = "Failed to create country"
	MsgUpdateCountryFailed   = "Failed to update country"
	MsgDeleteCountryFailed   = "Failed to delete country"
	MsgCreateCompFailed      = "Failed to create competition"
	MsgUpdateCompFailed      = "Failed to update competition"
	MsgDeleteCompFailed      = "Failed to delete competition"
	MsgAddParticipantsFailed = "Failed to add participants"
	MsgRemoveParticipantFail = "Failed to remove participant"
	MsgCreateMatchFailed     = "Failed to create match"
	MsgSimulateMatchFailed   = "Failed to simulate match"
	MsgUpdateResultFailed    = "Failed to update match result"
	MsgDeleteMatchFailed     = "Failed to delete match"
	MsgAddEventFailed        = "Failed to add match event"
)
