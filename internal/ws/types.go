package ws

const (
	// client -> server
	MsgCreateGame  = "create_game"
	MsgJoinGame    = "join_game"
	MsgMakeMove    = "make_move"
	MsgRestartGame = "restart_game"

	// server -> client
	MsgGameCreated  = "game_created"
	MsgGameJoined   = "game_joined"
	MsgPlayerJoined = "player_joined"
	MsgGameStart    = "game_start"
	MsgGameUpdate   = "game_update"
	MsgPlayerLeft   = "player_left"
	MsgError        = "error"
)

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)
