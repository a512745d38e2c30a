package services

import (
  "time"
  "github.com/mindnest/mindnest-backend/internal/platform/logger"
)

type Quote struct {
  Text   string `json:"text"`
  Author string `json:"author"`
}

var wellnessQuotes = []Quote{
  {Text: "Your mental health is a priority. Your happiness is essential. Your self-care is a necessity.", Author: "Unknown"},
  {Text: "You don't have to be positive all the time. It's perfectly okay to feel sad, angry, annoyed, frustrated, scared and anxious. Having feelings doesn't make you a negative person. It makes you human.", Author: "Lori Deschene"},
  {Text: "Healing takes time, and asking for help is a courageous step.", Author: "Mariska Hargitay"},
  {Text: "You are not your illness. You have an individual story to tell. You have a name, a history, a personality. Staying yourself is part of the battle.", Author: "Julian Seifter"},
  {Text: "Self-care is how you take your power back.", Author: "Lalah Delia"},
  {Text: "It's okay to not be okay. Just don't give up.", Author: "Unknown"},
  {Text: "Mental health is not a destination, but a process. It's about how you drive, not where you're going.", Author: "Noam Shpancer"},
  {Text: "You are stronger than you think. You are braver than you believe.", Author: "A.A. Milne"},
  {Text: "The strongest people are not those who show strength in front of us but those who win battles we know nothing about.", Author: "Unknown"},
  {Text: "Your present circumstances don't determine where you can go; they merely determine where you start.", Author: "Nido Qubein"},
  {Text: "Take a deep breath. It's just a bad day, not a bad life.", Author: "Unknown"},
  {Text: "Sometimes the bravest thing you can do is ask for help.", Author: "Unknown"},
  {Text: "You are allowed to be both a masterpiece and a work in progress simultaneously.", Author: "Sophia Bush"},
  {Text: "Happiness can be found even in the darkest of times, if one only remembers to turn on the light.", Author: "J.K. Rowling"},
  {Text: "You are enough just as you are. Each emotion you feel, everything in your life, everything you do or do not do... where you are and who you are right now is enough.", Author: "Unknown"},
  {Text: "Recovery is not one and done. It is a lifelong journey that takes place one day, one step at a time.", Author: "Unknown"},
  {Text: "Be gentle with yourself. You're doing the best you can.", Author: "Unknown"},
  {Text: "Your struggles do not define you. Your strength and courage do.", Author: "Unknown"},
  {Text: "Mental health problems don't define who you are. They are something you experience. You walk in the rain and you feel the rain, but you are not the rain.", Author: "Matt Haig"},
  {Text: "It's okay to take time for yourself. Rest and self-care are so important.", Author: "Unknown"},
  {Text: "You don't have to control your thoughts. You just have to stop letting them control you.", Author: "Dan Millman"},
  {Text: "Promise me you'll always remember: You're braver than you believe, stronger than you seem, and smarter than you think.", Author: "Christopher Robin"},
  {Text: "One small crack does not mean you are broken, it means that you were put to the test and you didn't fall apart.", Author: "Linda Poindexter"},
  {Text: "Tough times don't last. Tough people do.", Author: "Robert H. Schuller"},
  {Text: "You are not alone. You are seen. I am with you. You are not alone.", Author: "Shonda Rhimes"},
  {Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe"},
  {Text: "The only way out is through.", Author: "Robert Frost"},
  {Text: "You are worthy of love and respect. Starting with your own.", Author: "Unknown"},
  {Text: "Growth is painful. Change is painful. But nothing is as painful as staying stuck somewhere you don't belong.", Author: "Mandy Hale"},
  {Text: "Your journey doesn't have to be the same as anyone else's. Take it at your own pace.", Author: "Unknown"},
}

type QuoteService interface {
  DailyQuote(now time.Time) Quote
}

type quoteService struct {
  log *logger.Logger
}

func NewQuoteService(baseLog *logger.Logger) QuoteService {
  serviceLog := baseLog.With("service", "QuoteService")
  return &quoteService{log: serviceLog}
}

// DailyQuote rotates through the catalog by day of year, so every caller
// sees the same quote on a given day.
func (qs *quoteService) DailyQuote(now time.Time) Quote {
  return wellnessQuotes[now.YearDay()%len(wellnessQuotes)]
}
