package content

import "lucky-wave-server/internal/models"

// Небольшие помощники, чтобы авторский контент читался как сценарий.
func say(sp models.SpeakerID, text string) models.DialogueLine {
	return models.DialogueLine{Speaker: sp, Text: text}
}

func opt(text string, next models.SceneID) models.Choice {
	return models.Choice{Text: text, NextScene: next}
}

func optReq(text string, next models.SceneID, req models.ResourceKind) models.Choice {
	return models.Choice{Text: text, NextScene: next, Required: req}
}

func cast(name models.SpeakerID, pos models.Position, emotion models.Emotion) models.CharacterPlacement {
	return models.CharacterPlacement{Name: name, Position: pos, Emotion: emotion}
}

const (
	narrator  = models.SpeakerNarrator
	hero      = models.SpeakerHero
	bartender = models.SpeakerBartender
	target    = models.SpeakerTarget
	employee  = models.SpeakerEmployee
)

// chapter1 is "First Wave": the hero infiltrates the Lucky Wave casino.
// Ported from the original authored data. The original defined bar_win and
// vip twice; the richer variants are kept so the VIP arc stays reachable.
func chapter1() *models.Chapter {
	return &models.Chapter{
		ID:          "chapter1",
		Title:       "First Wave",
		Description: "The hero enters a luxurious casino to complete their first mission",
		Scenes: []*models.Scene{
			{
				ID:         "intro",
				Background: "casino_lobby",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "confident")},
				Dialogues: []models.DialogueLine{
					say(narrator, "Night. Neon lights reflect on the wet asphalt."),
					say(narrator, "You stand before the entrance to the most luxurious casino in the city - 'Lucky Wave'."),
					say(hero, "This is my chance. My first big mission."),
					say(narrator, "You adjust your tie and take a deep breath."),
					say(hero, "Time to catch the wave of luck..."),
				},
				Choices: []models.Choice{
					opt("Enter the casino", "inside"),
				},
			},
			{
				ID:         "inside",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "observant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "Inside the casino, an atmosphere of luxury and excitement reigns."),
					say(narrator, "Golden chandeliers illuminate the gaming tables, and the sounds of slots mix with quiet laughter."),
					say(hero, "Need to find the bartender. He must know where the target is."),
					say(narrator, "You scan the hall, looking for the bar counter."),
				},
				Choices: []models.Choice{
					opt("Approach the bar", "bar"),
					opt("Head to the gaming tables", "tables"),
					{Text: "Check the VIP area", NextScene: "vip", Required: models.ResourceKey, Premium: true},
				},
			},
			{
				ID:         "bar",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "confident"),
					cast(bartender, models.PositionRight, "neutral"),
				},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the bar counter. The bartender is a middle-aged man with a penetrating gaze."),
					say(bartender, "What will you drink?"),
					say(hero, "Whiskey. Double."),
					say(bartender, "Good choice. But first - a little game?"),
					say(narrator, "The bartender points to a card table."),
					say(bartender, "Beat me at blackjack - I'll tell you what interests you."),
				},
				Choices: []models.Choice{
					opt("Agree to play", "bar_blackjack"),
					opt("Try to negotiate", "bar_negotiate"),
				},
			},
			{
				ID:         "bar_blackjack",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "focused"),
					cast(bartender, models.PositionRight, "confident"),
				},
				Dialogues: []models.DialogueLine{
					say(narrator, "You sit at the table. The bartender shuffles the deck."),
					say(bartender, "Rules are simple: 21 or closer. Shall we begin?"),
				},
				Minigame: &models.MinigameSpec{
					Kind: models.MinigameBlackjack,
					Handlers: map[models.OutcomeToken]models.OutcomeHandler{
						models.OutcomeWin: {
							NextScene: "bar_win",
							Dialogues: []models.DialogueLine{
								say(bartender, "Well played! You've earned the information."),
								say(bartender, "Your target is in the VIP room. But it's not easy to get there..."),
							},
						},
						models.OutcomeLose: {
							NextScene: "bar_lose",
							Dialogues: []models.DialogueLine{
								say(bartender, "Bad luck. Maybe next time?"),
								say(narrator, "The bartender leaves, leaving you without information."),
							},
						},
						models.OutcomeDraw: {
							NextScene: "bar_draw",
							Dialogues: []models.DialogueLine{
								say(bartender, "Draw. But for persistence - a small hint: look in the slots."),
							},
						},
					},
				},
			},
			{
				ID:         "bar_negotiate",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "confident"),
					cast(bartender, models.PositionRight, "neutral"),
				},
				Dialogues: []models.DialogueLine{
					say(hero, "Maybe we can make a different deal?"),
					say(bartender, "Hmm... You're persistent. I like that."),
					say(bartender, "Alright, I'll give you the information, but in return you'll have to help me in the future."),
					say(hero, "Fair. What do you know?"),
					say(bartender, "Your target is in the VIP room. But you need a special pass to get there."),
					say(bartender, "You can get it by winning a poker tournament or... finding another way."),
					say(hero, "Thanks. I'll remember that."),
					say(bartender, "I hope so. Good luck."),
				},
				Choices: []models.Choice{
					opt("Head to the poker table", "poker_tournament"),
					opt("Try to find another way", "tables"),
				},
			},
			{
				ID:         "bar_win",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "satisfied"),
					cast(bartender, models.PositionRight, "impressed"),
				},
				Dialogues: []models.DialogueLine{
					say(bartender, "Your target is in the VIP room on the second floor."),
					say(bartender, "But you need a special pass to get there. You can get it by winning a poker tournament."),
					say(hero, "Thanks for the information."),
					say(bartender, "Good luck. You'll need it."),
				},
				Choices: []models.Choice{
					opt("Head to the poker table", "poker_tournament"),
					opt("Try hacking the system through slots", "slots_hack"),
				},
			},
			{
				ID:         "tables",
				Background: "casino_tables",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "observant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the gaming tables. Excitement is in the air."),
					say(narrator, "One of the slot machines catches your attention - it looks unusual."),
					say(hero, "This could be a way to access the system..."),
				},
				Choices: []models.Choice{
					opt("Approach the slot machine", "slots_hack"),
					opt("Return to the bar", "bar"),
				},
			},
			{
				ID:         "slots_hack",
				Background: "casino_tables",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the slot machine. A message about a special combination flashes on the screen."),
					say(hero, "If I can get the right combination, I can access the security system..."),
				},
				Minigame: &models.MinigameSpec{
					Kind: models.MinigameSlots,
					Handlers: map[models.OutcomeToken]models.OutcomeHandler{
						models.OutcomeJackpot: {
							NextScene: "slots_success",
							Dialogues: []models.DialogueLine{
								say(narrator, "JACKPOT! System hacked!"),
								say(hero, "Excellent! Now I have access to the VIP area."),
							},
						},
						models.OutcomeWin: {
							NextScene: "slots_partial",
							Dialogues: []models.DialogueLine{
								say(narrator, "Good combination, but not perfect. System partially opened."),
								say(hero, "This should be enough..."),
							},
						},
						models.OutcomeLose: {
							NextScene: "slots_fail",
							Dialogues: []models.DialogueLine{
								say(narrator, "Failed to hack the system. Need to try another way."),
							},
						},
						models.OutcomePartial: {
							NextScene: "slots_partial",
							Dialogues: []models.DialogueLine{
								say(narrator, "Almost got it. Try again."),
							},
						},
					},
				},
			},
			{
				ID:         "poker_tournament",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "determined")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You find a poker tournament. The prize - a VIP pass."),
					say(narrator, "This is your chance to get what you need."),
				},
				Minigame: &models.MinigameSpec{
					Kind: models.MinigamePoker,
					Handlers: map[models.OutcomeToken]models.OutcomeHandler{
						models.OutcomeWin: {
							NextScene: "poker_win",
							Dialogues: []models.DialogueLine{
								say(narrator, "You won the tournament! The VIP pass is yours."),
								say(hero, "Now I can get where I need to go."),
							},
						},
						models.OutcomeLose: {
							NextScene: "poker_lose",
							Dialogues: []models.DialogueLine{
								say(narrator, "Tournament lost. Need to find another way."),
							},
						},
					},
				},
			},
			{
				ID:         "slots_success",
				Background: "casino_tables",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "satisfied")},
				Dialogues: []models.DialogueLine{
					say(narrator, "Security system disabled. Now you can access the VIP area."),
					say(hero, "Excellent! Now I need to find a way to get there unnoticed."),
				},
				Choices: []models.Choice{
					opt("Head to the VIP area", "vip_entrance"),
					opt("Return to the bartender for information", "bar_info"),
				},
			},
			{
				ID:         "slots_partial",
				Background: "casino_tables",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "System partially opened. Need to try again or find another way."),
					say(hero, "Maybe I should try again?"),
				},
				Choices: []models.Choice{
					opt("Try again", "slots_hack"),
					opt("Find another way", "bar"),
				},
			},
			{
				ID:         "slots_fail",
				Background: "casino_tables",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "cautious")},
				Dialogues: []models.DialogueLine{
					say(narrator, "System not hacked. Guards may notice your attempts."),
					say(hero, "Need to be more careful. I'll try a different approach."),
				},
				Choices: []models.Choice{
					opt("Return to the bartender", "bar"),
					optReq("Try the poker tournament", "poker_tournament", models.ResourceKey),
				},
			},
			{
				ID:         "bar_lose",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "cautious"),
					cast(bartender, models.PositionRight, "neutral"),
				},
				Dialogues: []models.DialogueLine{
					say(bartender, "No luck. Maybe next time?"),
					say(narrator, "The bartender leaves, leaving you without information."),
					say(hero, "Need to find another way to get information."),
				},
				Choices: []models.Choice{
					opt("Try playing with the bartender again", "bar_blackjack"),
					opt("Try hacking the system", "slots_hack"),
					opt("Try to negotiate", "bar_negotiate"),
				},
			},
			{
				ID:         "bar_draw",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "focused"),
					cast(bartender, models.PositionRight, "confident"),
				},
				Dialogues: []models.DialogueLine{
					say(bartender, "Draw. But for persistence - a small hint: look in the slots."),
					say(hero, "Thanks. That will help."),
				},
				Choices: []models.Choice{
					opt("Head to the slot machines", "slots_hack"),
				},
			},
			{
				ID:         "bar_info",
				Background: "casino_bar",
				Characters: []models.CharacterPlacement{
					cast(hero, models.PositionLeft, "confident"),
					cast(bartender, models.PositionRight, "neutral"),
				},
				Dialogues: []models.DialogueLine{
					say(bartender, "You're here again. Need something else?"),
					say(hero, "Maybe you know something else about the VIP area?"),
					say(bartender, "There's strict security there. You can't get through without a pass."),
					say(bartender, "But if you have connections... or money..."),
					say(hero, "I see. Thanks."),
				},
				Choices: []models.Choice{
					optReq("Try to bribe the guards", "vip_bribe", models.ResourceTicket),
					opt("Get a pass through the tournament", "poker_tournament"),
				},
			},
			{
				ID:         "poker_win",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "triumphant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You won the tournament! The VIP pass is yours."),
					say(narrator, "The organizer hands you a golden pass."),
					say(hero, "Now I can get where I need to go."),
				},
				Choices: []models.Choice{
					opt("Head to the VIP area", "vip_entrance"),
				},
			},
			{
				ID:         "poker_lose",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "cautious")},
				Dialogues: []models.DialogueLine{
					say(narrator, "Tournament lost. Need to find another way."),
					say(hero, "No luck. But I won't give up."),
				},
				Choices: []models.Choice{
					opt("Try hacking the system", "slots_hack"),
					opt("Return to the bartender", "bar"),
					optReq("Try to bribe the guards", "vip_bribe", models.ResourceTicket),
				},
			},
			{
				ID:         "vip_entrance",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "observant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the VIP entrance. The guard checks your pass."),
					say(narrator, "The pass is valid. The guard lets you through."),
					say(hero, "Great. Now I need to find the target."),
				},
				Choices: []models.Choice{
					opt("Enter the VIP area", "vip"),
				},
			},
			{
				ID:         "vip_bribe",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the guard with an offer."),
					say(narrator, "The guard hesitates, but accepts your offer."),
					say(hero, "Money solves a lot in this world."),
				},
				Choices: []models.Choice{
					opt("Enter the VIP area", "vip"),
				},
			},
			{
				ID:         "vip",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "cautious")},
				Dialogues: []models.DialogueLine{
					say(narrator, "VIP area. Only the most important guests play here."),
					say(narrator, "Luxury is everywhere. Golden chandeliers, velvet carpets, expensive drinks."),
					say(narrator, "You look around the hall and see your target - she's sitting at a table in the far corner."),
					say(hero, "There she is. My mission is almost complete..."),
					say(narrator, "But there are several guards around her. Need to be careful."),
				},
				Choices: []models.Choice{
					opt("Approach directly", "vip_direct"),
					opt("Wait for the right moment", "vip_wait"),
					opt("Try to distract the guards", "vip_distract"),
				},
			},
			{
				ID:         "vip_direct",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You approach the target directly. The guards are alert."),
					say(narrator, "But your confidence and pass do their job - they let you through."),
					say(hero, "Sometimes the best tactic is directness."),
				},
				Choices: []models.Choice{
					opt("Continue", "vip_confrontation"),
				},
			},
			{
				ID:         "vip_wait",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "observant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You wait for the right moment. Time passes slowly."),
					say(narrator, "Finally, the target gets up and heads to the exit. The guards follow her."),
					say(hero, "Perfect moment. Now I can approach unnoticed."),
				},
				Choices: []models.Choice{
					opt("Follow the target", "vip_follow"),
				},
			},
			{
				ID:         "vip_distract",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You create a small incident - drop a glass, attracting the guards' attention."),
					say(narrator, "While they deal with the situation, you quietly approach the target."),
					say(hero, "Cunning is sometimes better than force."),
				},
				Choices: []models.Choice{
					opt("Approach the target", "vip_confrontation"),
				},
			},
			{
				ID:         "vip_follow",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "cautious")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You follow the target through the VIP area corridors."),
					say(narrator, "She enters a separate room. Guards stay outside."),
					say(hero, "Perfect opportunity. Now we can talk alone."),
				},
				Choices: []models.Choice{
					opt("Enter the room", "vip_confrontation"),
				},
			},
			{
				ID:         "vip_confrontation",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You are face to face with your mission target."),
					say(narrator, "She looks at you with surprise but without fear."),
					say(target, "I knew you would come. The question was only when."),
					say(hero, "Then you know why I'm here."),
					say(target, "I know. But let's talk. Maybe we can come to an agreement."),
				},
				Choices: []models.Choice{
					opt("Listen to the offer", "vip_deal"),
					opt("Complete the mission", "vip_mission_complete"),
					opt("Try to negotiate", "vip_negotiate"),
				},
			},
			{
				ID:         "vip_deal",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "observant")},
				Dialogues: []models.DialogueLine{
					say(target, "I can give you information that is more important than your current mission."),
					say(target, "But in return you must help me with a problem."),
					say(hero, "Interesting. Tell me more."),
					say(target, "Something bigger is happening in this casino than it seems. Someone is using it for money laundering."),
					say(hero, "And you want me to investigate this?"),
					say(target, "Exactly. Help me - and I'll give you what you need."),
				},
				Choices: []models.Choice{
					opt("Agree to the deal", "vip_deal_accepted"),
					opt("Refuse", "vip_mission_complete"),
				},
			},
			{
				ID:         "vip_negotiate",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(hero, "Maybe we can find a compromise?"),
					say(target, "Maybe. But what can you offer?"),
					say(hero, "I can help you with your problem, but I need guarantees."),
					say(target, "Honestly, this is better than I expected. Let's make a deal."),
				},
				Choices: []models.Choice{
					opt("Accept the agreement", "vip_deal_accepted"),
				},
			},
			{
				ID:         "vip_deal_accepted",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "satisfied")},
				Dialogues: []models.DialogueLine{
					say(target, "Excellent. Here is the information you need."),
					say(narrator, "She hands you an envelope with documents."),
					say(target, "Now it's your turn. Find the one behind the money laundering."),
					say(hero, "Thanks. I'll fulfill my part of the deal."),
					say(narrator, "You received new information and a new mission. The story continues..."),
				},
				Choices: []models.Choice{
					opt("Start Investigation", "investigation_start"),
					opt("Return to main menu", models.SceneReturnToMenu),
				},
			},
			{
				ID:         "vip_mission_complete",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "triumphant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You completed your mission. Target neutralized."),
					say(hero, "Mission accomplished. But something tells me this is just the beginning."),
					say(narrator, "You leave the VIP area, leaving behind a completed mission."),
				},
				Choices: []models.Choice{
					opt("Return to main menu", models.SceneReturnToMenu),
				},
			},
			{
				ID:         "investigation_start",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You start the investigation. The documents point to several suspicious operations."),
					say(hero, "Need to check the casino's financial operations. I'll start with the main office."),
					say(narrator, "But access there is limited. Need to find a way to get inside."),
				},
				Choices: []models.Choice{
					opt("Try hacking the security system", "office_hack"),
					opt("Find an employee who can help", "find_employee"),
					opt("Wait for the right moment", "office_wait"),
				},
			},
			{
				ID:         "office_hack",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You find a computer with access to the security system."),
					say(hero, "This might be difficult, but I'll try."),
				},
				// Исход partial намеренно без обработчика: срабатывает фолбэк
				// на варианты сцены (здесь их нет, поэтому повтор через выборы
				// соседних сцен).
				Minigame: &models.MinigameSpec{
					Kind: models.MinigameSlots,
					Handlers: map[models.OutcomeToken]models.OutcomeHandler{
						models.OutcomeJackpot: {
							NextScene: "office_hack_success",
							Dialogues: []models.DialogueLine{
								say(narrator, "System hacked! You gained access to financial records."),
								say(hero, "Excellent! Now I can see what's happening."),
							},
						},
						models.OutcomeWin: {
							NextScene: "office_hack_partial",
							Dialogues: []models.DialogueLine{
								say(narrator, "Partial access obtained. You see part of the information."),
							},
						},
						models.OutcomeLose: {
							NextScene: "office_hack_fail",
							Dialogues: []models.DialogueLine{
								say(narrator, "Hack failed. Security system activated."),
							},
						},
					},
				},
			},
			{
				ID:         "office_hack_success",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "satisfied")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You found evidence of money laundering. The main suspect is the casino director."),
					say(hero, "Now need to gather more evidence and hand it over."),
					say(narrator, "Mission accomplished. You uncovered the conspiracy."),
				},
				Choices: []models.Choice{
					opt("Complete Mission", "finale_success"),
				},
			},
			{
				ID:         "office_hack_partial",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You see part of the information, but need additional evidence."),
					say(hero, "Need to find another way to get full access."),
				},
				Choices: []models.Choice{
					opt("Try again", "office_hack"),
					opt("Find Employee", "find_employee"),
				},
			},
			{
				ID:         "office_hack_fail",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "cautious")},
				Dialogues: []models.DialogueLine{
					say(narrator, "Hack failed. Guards may be on the way."),
					say(hero, "Need to quickly find another way."),
				},
				Choices: []models.Choice{
					opt("Find Employee", "find_employee"),
					opt("Try a different approach", "investigation_start"),
				},
			},
			{
				ID:         "find_employee",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You find an employee who looks dissatisfied."),
					say(employee, "I know something wrong is happening here. But I'm afraid to speak."),
					say(hero, "I can help. But I need information."),
					say(employee, "Okay. But only if you promise to protect me."),
				},
				Choices: []models.Choice{
					opt("Promise Protection", "employee_info"),
					optReq("Offer Money", "employee_bribe", models.ResourceTicket),
				},
			},
			{
				ID:         "employee_info",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "satisfied")},
				Dialogues: []models.DialogueLine{
					say(employee, "The casino director launders money through shell companies."),
					say(employee, "I have documents that prove it."),
					say(narrator, "The employee hands you a folder with documents."),
					say(hero, "Thanks. This will help a lot."),
				},
				Choices: []models.Choice{
					opt("Hand Over Evidence", "finale_success"),
				},
			},
			{
				ID:         "employee_bribe",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "confident")},
				Dialogues: []models.DialogueLine{
					say(employee, "Hmm... This changes things."),
					say(narrator, "The employee takes the money and gives you information."),
					say(employee, "That's all I know. Now leave me alone."),
				},
				Choices: []models.Choice{
					opt("Use Information", "finale_success"),
				},
			},
			{
				ID:         "office_wait",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "observant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You wait for the right moment. Time passes slowly."),
					say(narrator, "Finally, the director leaves the office. Guards follow him."),
					say(hero, "Perfect moment. Now I can get inside."),
				},
				Choices: []models.Choice{
					opt("Enter the office", "office_search"),
				},
			},
			{
				ID:         "office_search",
				Background: "casino_interior",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "focused")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You search the director's office. In the safe you find important documents."),
					say(hero, "There it is! Evidence of money laundering."),
					say(narrator, "You photograph the documents and leave the office."),
				},
				Choices: []models.Choice{
					opt("Hand Over Evidence", "finale_success"),
				},
			},
			{
				ID:         "finale_success",
				Background: "casino_lobby",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionCenter, "triumphant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You successfully completed the mission. Evidence handed over."),
					say(narrator, "Conspiracy uncovered, the guilty will be punished."),
					say(hero, "Mission accomplished. But this is only the first wave of luck..."),
					say(narrator, "Chapter 1 completed successfully! Stay tuned for updates to continue the story!"),
				},
				Choices: []models.Choice{
					opt("Return to main menu", models.SceneReturnToMenu),
				},
			},
			{
				ID:         "finale",
				Background: "casino_vip",
				Characters: []models.CharacterPlacement{cast(hero, models.PositionLeft, "triumphant")},
				Dialogues: []models.DialogueLine{
					say(narrator, "You completed your mission. The wave of luck was on your side."),
					say(hero, "Chapter 1 is complete. But this is only the beginning..."),
					say(narrator, "Chapter 1 completed. Stay tuned for updates to continue the story!"),
				},
				Choices: []models.Choice{
					opt("Return to main menu", models.SceneReturnToMenu),
				},
			},
		},
	}
}
