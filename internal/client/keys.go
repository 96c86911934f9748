package client

import "fmt"

// Cache keys are derived from the operation name plus its arguments, so a
// superseding request with the same key reuses the cached result instead of
// re-issuing work.
func conversationListKey(userID string) string {
	return fmt.Sprintf("q:conversations:%s", userID)
}

func messageListKey(conversationID string) string {
	return fmt.Sprintf("q:messages:%s", conversationID)
}

func followersKey(userID string) string {
	return fmt.Sprintf("q:followers:%s", userID)
}

func followingKey(userID string) string {
	return fmt.Sprintf("q:following:%s", userID)
}

func checkFollowingKey(followerID, followingID string) string {
	return fmt.Sprintf("q:check-following:%s:%s", followerID, followingID)
}

func recentPostsKey() string {
	return "q:posts:recent"
}

func postKey(postID string) string {
	return fmt.Sprintf("q:post:%s", postID)
}
