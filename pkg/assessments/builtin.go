package assessments

// builtinAssessments returns the fixed test set. Each prompt is answered
// on the shared Never..Very Often frequency scale.
func builtinAssessments() []Assessment {
	return []Assessment{
		{
			ID:            "adhd-symptom-checker",
			Title:         "ADHD Symptom Checker",
			Description:   "Comprehensive assessment based on DSM-5 criteria for ADHD diagnosis.",
			Duration:      "15-20 min",
			QuestionCount: 18,
			Category:      CategoryAttention,
			QuestionPrompts: []string{
				"How often do you have trouble wrapping up the final details of a project once the challenging parts are done?",
				"How often do you have difficulty getting things in order when a task requires organization?",
				"How often do you have problems remembering appointments or obligations?",
				"How often do you avoid or delay getting started on a task that requires a lot of thought?",
				"How often do you fidget or squirm with your hands or feet when you have to sit for a long time?",
				"How often do you feel overly active and compelled to do things, as if driven by a motor?",
				"How often do you make careless mistakes when working on a boring or difficult project?",
				"How often do you have difficulty keeping your attention during repetitive work?",
				"How often do you have difficulty concentrating on what people say, even when spoken to directly?",
				"How often do you misplace or have difficulty finding things at home or at work?",
				"How often are you distracted by activity or noise around you?",
				"How often do you leave your seat in situations where remaining seated is expected?",
				"How often do you feel restless or fidgety?",
				"How often do you have difficulty unwinding or relaxing in your free time?",
				"How often do you find yourself talking too much in social situations?",
				"How often do you finish other people's sentences before they can finish them themselves?",
				"How often do you have difficulty waiting your turn?",
				"How often do you interrupt others when they are busy?",
			},
		},
		{
			ID:            "executive-function-assessment",
			Title:         "Executive Function Assessment",
			Description:   "Evaluate your planning, organization, and time management skills.",
			Duration:      "10-15 min",
			QuestionCount: 15,
			Category:      CategoryExecutiveFunction,
			QuestionPrompts: []string{
				"How often do you underestimate how long a task will take?",
				"How often do you start the day without a clear plan of what to do first?",
				"How often do you switch between tasks before finishing any of them?",
				"How often do deadlines surprise you even though you knew about them?",
				"How often does your workspace become too cluttered to work in?",
				"How often do you forget a step in a multi-step task?",
				"How often do you put off decisions until they are made for you?",
				"How often do you lose track of time during an absorbing activity?",
				"How often do you struggle to break a large project into smaller steps?",
				"How often do you rewrite or abandon to-do lists instead of working through them?",
				"How often do you arrive late because getting ready took longer than expected?",
				"How often do you forget why you walked into a room?",
				"How often do you double-book yourself or miss scheduled commitments?",
				"How often do you struggle to restart a task after an interruption?",
				"How often do you leave routine paperwork or admin tasks undone for weeks?",
			},
		},
		{
			ID:            "emotional-response-evaluation",
			Title:         "Emotional Response Evaluation",
			Description:   "Assess your emotional regulation and impulse control patterns.",
			Duration:      "12-15 min",
			QuestionCount: 20,
			Category:      CategoryEmotionalRegulation,
			QuestionPrompts: []string{
				"How often do small frustrations feel overwhelming?",
				"How often does your mood shift several times in a single day?",
				"How often do you say things in anger that you later regret?",
				"How often does criticism, even mild, feel crushing?",
				"How often do you have trouble calming down once upset?",
				"How often do you act on an impulse and regret it moments later?",
				"How often does excitement make it hard to focus on anything else?",
				"How often do you feel emotions more intensely than the people around you seem to?",
				"How often does boredom feel physically uncomfortable?",
				"How often do you snap at people close to you over minor things?",
				"How often do you avoid situations because you fear an emotional reaction?",
				"How often does waiting in line or in traffic make you visibly agitated?",
				"How often do you make purchases on impulse that strain your budget?",
				"How often do you feel a sudden drop in motivation after a setback?",
				"How often do you replay emotional moments in your head for days?",
				"How often does a single negative comment overshadow a day of positives?",
				"How often do you struggle to hide disappointment in the moment?",
				"How often do you quit an activity abruptly when frustrated?",
				"How often does stress show up in your body before you notice it in your mind?",
				"How often do you need longer than others to recover from an argument?",
			},
		},
		{
			ID:            "learning-style-analysis",
			Title:         "Learning Style Analysis",
			Description:   "Discover your optimal learning strategies and potential challenges.",
			Duration:      "10 min",
			QuestionCount: 12,
			Category:      CategoryLearning,
			QuestionPrompts: []string{
				"How often do you retain more from a video than from the same material in text?",
				"How often do you need to re-read a paragraph because your mind wandered?",
				"How often does taking handwritten notes help the material stick?",
				"How often do you learn a skill faster by doing it than by being told how?",
				"How often do long lectures lose you within the first ten minutes?",
				"How often do you remember where on a page something was, but not what it said?",
				"How often does background music help rather than hurt your studying?",
				"How often do you explain things to others to solidify them for yourself?",
				"How often do you need examples before an abstract rule makes sense?",
				"How often do you study best in short bursts rather than long sessions?",
				"How often do diagrams or sketches unlock a concept that words could not?",
				"How often do you forget material you crammed within a few days?",
			},
		},
		{
			ID:            "behavioral-patterns-assessment",
			Title:         "Behavioral Patterns Assessment",
			Description:   "Identify common ADHD-related behavioral patterns in daily life.",
			Duration:      "15 min",
			QuestionCount: 25,
			Category:      CategoryBehavior,
			QuestionPrompts: []string{
				"How often do you start a new hobby and abandon it within weeks?",
				"How often do you stay up far later than intended without noticing?",
				"How often do you skip meals because you were absorbed in something?",
				"How often do you leave cabinets, drawers, or doors open behind you?",
				"How often do you lose your keys, wallet, or phone?",
				"How often do you agree to plans and later wish you had not?",
				"How often do you leave dishes or laundry mid-task?",
				"How often do you buy duplicates of things you already own but cannot find?",
				"How often do you pace or move around while on phone calls?",
				"How often do you forget to reply to messages you meant to answer?",
				"How often do you procrastinate on chores until they become urgent?",
				"How often do you take on more commitments than you can keep?",
				"How often do you drive past your exit or miss your stop?",
				"How often do you leave events early because you ran out of patience?",
				"How often do you channel stress into cleaning or reorganizing at odd hours?",
				"How often do you hyperfocus on one task while everything else slips?",
				"How often do you forget food cooking on the stove or in the oven?",
				"How often do you re-open the fridge hoping its contents changed?",
				"How often do you interrupt your own sentences with a new thought?",
				"How often do you juggle multiple unfinished books, shows, or games?",
				"How often do you pay bills late despite having the money?",
				"How often do you rearrange furniture or plans on a sudden whim?",
				"How often do you avoid phone calls you know you should make?",
				"How often do you lose entire evenings to scrolling without meaning to?",
				"How often do you run out of essentials because restocking slipped your mind?",
			},
		},
		{
			ID:            "focus-concentration-test",
			Title:         "Focus & Concentration Test",
			Description:   "Measure your attention span and concentration abilities.",
			Duration:      "8-10 min",
			QuestionCount: 10,
			Category:      CategoryAttention,
			QuestionPrompts: []string{
				"How often can you read for thirty minutes without checking your phone?",
				"How often do you lose the thread of a conversation mid-sentence?",
				"How often do you re-watch parts of a video because you zoned out?",
				"How often can you finish a focused work block without switching tasks?",
				"How often do background conversations pull your attention away?",
				"How often do you forget instructions given to you moments earlier?",
				"How often do you catch yourself daydreaming during meetings?",
				"How often do you need total silence to concentrate?",
				"How often do you notice an hour passed without progress on the task at hand?",
				"How often do you abandon written content partway because it stopped holding you?",
			},
		},
	}
}
